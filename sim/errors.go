// Defines the error taxonomy for the simulation engine.
// Every error here is fatal to a run: the simulator either returns a
// complete inspection tally or fails outright, never a partial result.

package sim

import "errors"

var (
	// ErrOverflow reports that a worry-level operation or the relief
	// modulus product exceeded the int64 range.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrRouting reports a throw target outside the simulation's monkey domain.
	ErrRouting = errors.New("throw target is not a known monkey")

	// ErrState reports a missing item queue for a monkey that has a spec.
	// This is an internal-consistency violation and should be unreachable
	// for any simulation that passed Validate.
	ErrState = errors.New("monkey state missing")

	// ErrInsufficientData reports that fewer than two monkeys inspected
	// any items, so a top-two query has no answer.
	ErrInsufficientData = errors.New("fewer than two monkeys inspected items")
)
