// Checked evaluation of worry operations. Worry levels can grow before the
// relief policy bounds them, so both add and multiply must detect int64
// overflow instead of silently wrapping; an overflow aborts the whole run.

package sim

import (
	"fmt"
	"math"
)

// addChecked returns a+b, reporting false on int64 overflow.
func addChecked(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

// mulChecked returns a*b, reporting false on int64 overflow.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

// Apply resolves both operands against the current worry level and applies
// the operator. The checked-arithmetic contract is the same in both relief
// modes: modulus relief keeps values small enough that overflow does not
// occur in practice, but Apply does not assume it.
func (op Operation) Apply(old int64) (int64, error) {
	first := op.First.resolve(old)
	second := op.Second.resolve(old)

	var (
		result int64
		ok     bool
	)
	switch op.Op {
	case OpAdd:
		result, ok = addChecked(first, second)
	case OpMultiply:
		result, ok = mulChecked(first, second)
	default:
		return 0, fmt.Errorf("unknown operator %q", op.Op)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d %s %d", ErrOverflow, first, op.Op, second)
	}
	return result, nil
}
