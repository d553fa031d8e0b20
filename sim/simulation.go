// Defines the Simulation, the whole-system snapshot handed over by the
// loader: one immutable spec and one mutable item queue per monkey,
// indexed densely by MonkeyID.

package sim

import "fmt"

// Simulation pairs the read-only monkey specs with the mutable item
// queues. Both slices are indexed by MonkeyID, so the spec domain and the
// state domain are identical by construction; Validate additionally checks
// that every throw target and divisor is sane.
type Simulation struct {
	Specs  []MonkeySpec
	Queues []*ItemQueue
}

// NewSimulation builds a Simulation from per-monkey specs and starting
// items, both indexed by MonkeyID.
func NewSimulation(specs []MonkeySpec, startingItems [][]int64) *Simulation {
	queues := make([]*ItemQueue, len(startingItems))
	for i, items := range startingItems {
		queues[i] = NewItemQueue(items)
	}
	return &Simulation{Specs: specs, Queues: queues}
}

// Len returns the number of monkeys.
func (s *Simulation) Len() int {
	return len(s.Specs)
}

// Validate checks the invariants the simulator relies on: spec and queue
// domains match, every throw target is a known MonkeyID, and every test
// divisor is positive. A failure here means the external specification was
// malformed; the simulator itself never breaks these.
func (s *Simulation) Validate() error {
	if len(s.Specs) != len(s.Queues) {
		return fmt.Errorf("%w: %d specs but %d queues", ErrState, len(s.Specs), len(s.Queues))
	}
	n := MonkeyID(len(s.Specs))
	for id, spec := range s.Specs {
		if spec.Test.Divisor <= 0 {
			return fmt.Errorf("monkey %d: divisor must be positive, got %d", id, spec.Test.Divisor)
		}
		for _, target := range []MonkeyID{spec.Preference.IfTrue, spec.Preference.IfFalse} {
			if target < 0 || target >= n {
				return fmt.Errorf("%w: monkey %d throws to %d (domain 0..%d)", ErrRouting, id, target, n-1)
			}
		}
		if s.Queues[id] == nil {
			return fmt.Errorf("%w: monkey %d has no queue", ErrState, id)
		}
	}
	return nil
}

// Clone returns a deep copy of the simulation with fresh queues, so the
// same loaded instance can be run more than once. Specs are immutable and
// shared by value.
func (s *Simulation) Clone() *Simulation {
	specs := make([]MonkeySpec, len(s.Specs))
	copy(specs, s.Specs)
	queues := make([]*ItemQueue, len(s.Queues))
	for i, q := range s.Queues {
		queues[i] = NewItemQueue(q.Items())
	}
	return &Simulation{Specs: specs, Queues: queues}
}

// TotalItems returns the number of items currently held across all queues.
func (s *Simulation) TotalItems() int {
	total := 0
	for _, q := range s.Queues {
		total += q.Len()
	}
	return total
}
