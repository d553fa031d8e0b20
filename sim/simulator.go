// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Number of rounds and relief mode for the two standard runs.
const (
	ShortRunRounds = 20
	LongRunRounds  = 10000
)

// Simulator drives a simulation through a fixed number of rounds. It owns
// the item queues for the duration of Run; no state besides the queues and
// the inspection counter survives from one round to the next.
type Simulator struct {
	Simulation *Simulation
	Relief     ReliefPolicy
	Rounds     int
	Counter    *InspectionCounter
}

// NewSimulator prepares a run over the given simulation. The relief policy
// is fixed for the whole run.
func NewSimulator(simulation *Simulation, rounds int, relief ReliefPolicy) *Simulator {
	return &Simulator{
		Simulation: simulation,
		Relief:     relief,
		Rounds:     rounds,
		Counter:    NewInspectionCounter(simulation.Len()),
	}
}

// Run executes every round and returns the final inspection counter.
// Execution is strictly single-threaded: within a round, monkeys take
// their turns in ascending MonkeyID order, so an item thrown to a
// higher-numbered monkey is inspected later in the same round, while an
// item thrown to a lower-numbered monkey waits for the next round. That
// asymmetry is part of the simulation's semantics, not an artifact.
//
// Any error aborts the run immediately with no partial result.
func (s *Simulator) Run() (*InspectionCounter, error) {
	if err := s.Simulation.Validate(); err != nil {
		return nil, err
	}
	for round := 1; round <= s.Rounds; round++ {
		for id := MonkeyID(0); int(id) < s.Simulation.Len(); id++ {
			if err := s.turn(round, id); err != nil {
				return nil, err
			}
		}
		logrus.Debugf("[round %05d] inspections=%d items=%d", round, s.Counter.Total(), s.Simulation.TotalItems())
	}
	return s.Counter, nil
}

// turn processes one monkey's turn within a round. The monkey's whole
// queue is taken up front and never re-touched, so an item the monkey
// receives during its own turn is not double-processed.
func (s *Simulator) turn(round int, id MonkeyID) error {
	spec := s.Simulation.Specs[id]
	queue := s.Simulation.Queues[id]
	if queue == nil {
		return fmt.Errorf("%w: monkey %d in round %d", ErrState, id, round)
	}
	batch := queue.TakeAll()
	for _, worry := range batch {
		s.Counter.Record(id)

		inspected, err := spec.Operation.Apply(worry)
		if err != nil {
			return fmt.Errorf("monkey %d, round %d, item %d: %w", id, round, worry, err)
		}
		relieved := s.Relief.Apply(inspected)

		target := spec.Preference.Target(spec.Test.Holds(relieved))
		if target < 0 || int(target) >= s.Simulation.Len() {
			return fmt.Errorf("%w: monkey %d threw item %d to %d in round %d", ErrRouting, id, relieved, target, round)
		}
		s.Simulation.Queues[target].Enqueue(relieved)
	}
	return nil
}

// RunShort runs 20 rounds with divide-by-three relief and returns the
// product of the two highest inspection counts.
func RunShort(simulation *Simulation) (int64, error) {
	counter, err := NewSimulator(simulation, ShortRunRounds, NewDivideRelief()).Run()
	if err != nil {
		return 0, err
	}
	return counter.Business()
}

// RunLong runs 10000 rounds with modulus relief and returns the product of
// the two highest inspection counts.
func RunLong(simulation *Simulation) (int64, error) {
	relief, err := NewModulusRelief(simulation)
	if err != nil {
		return 0, err
	}
	counter, err := NewSimulator(simulation, LongRunRounds, relief).Run()
	if err != nil {
		return 0, err
	}
	return counter.Business()
}
