// Relief policies bound an item's worry level after each operation so a
// run can last arbitrarily many rounds without unbounded arithmetic.

package sim

import "fmt"

// ReliefMode selects how worry levels are bounded after each operation.
type ReliefMode string

const (
	// ReliefDivide truncates the worry level to a third after every
	// inspection. Suitable for short runs where growth stays bounded.
	ReliefDivide ReliefMode = "divide"

	// ReliefModulus reduces the worry level modulo the product of every
	// distinct test divisor. Suitable for arbitrarily long runs.
	ReliefModulus ReliefMode = "modulus"
)

// ReliefPolicy is fixed once per run. In modulus mode it carries the
// precomputed divisor product; the product is per-run configuration, never
// shared across runs and never recomputed per item.
type ReliefPolicy struct {
	Mode    ReliefMode
	Modulus int64 // product of distinct divisors; set only in modulus mode
}

// NewDivideRelief returns the divide-by-three policy.
func NewDivideRelief() ReliefPolicy {
	return ReliefPolicy{Mode: ReliefDivide}
}

// NewModulusRelief computes the product M of the distinct test divisors in
// the simulation and returns the reduce-modulo-M policy.
//
// Reducing mod M never changes a later divisibility outcome: operations
// are built from addition and multiplication only, both of which commute
// with reduction mod M, and every individual divisor d divides M, so
// x mod d == (x mod M) mod d for all reachable x. The product itself is
// computed with checked multiplication; an instance whose divisors
// overflow int64 is rejected before the first round.
func NewModulusRelief(s *Simulation) (ReliefPolicy, error) {
	seen := make(map[int64]bool)
	modulus := int64(1)
	for id, spec := range s.Specs {
		d := spec.Test.Divisor
		if seen[d] {
			continue
		}
		seen[d] = true
		product, ok := mulChecked(modulus, d)
		if !ok {
			return ReliefPolicy{}, fmt.Errorf("%w: divisor product exceeds int64 at monkey %d (divisor %d)", ErrOverflow, id, d)
		}
		modulus = product
	}
	return ReliefPolicy{Mode: ReliefModulus, Modulus: modulus}, nil
}

// Apply bounds a worry level according to the policy. The policy must come
// from NewDivideRelief or NewModulusRelief; a zero-value or otherwise
// unknown mode is a programming error.
func (p ReliefPolicy) Apply(v int64) int64 {
	switch p.Mode {
	case ReliefDivide:
		return v / 3
	case ReliefModulus:
		return v % p.Modulus
	default:
		panic(fmt.Sprintf("Apply: unknown relief mode %q", p.Mode))
	}
}
