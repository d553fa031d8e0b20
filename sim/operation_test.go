package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Apply_AddLiteral(t *testing.T) {
	op := Operation{First: OperandOld(), Op: OpAdd, Second: OperandLiteral(6)}
	got, err := op.Apply(54)
	require.NoError(t, err)
	assert.Equal(t, int64(60), got)
}

func TestOperation_Apply_MultiplyLiteral(t *testing.T) {
	op := Operation{First: OperandOld(), Op: OpMultiply, Second: OperandLiteral(19)}
	got, err := op.Apply(79)
	require.NoError(t, err)
	assert.Equal(t, int64(1501), got)
}

func TestOperation_Apply_SquaresOldValue(t *testing.T) {
	// GIVEN "new = old * old"
	op := Operation{First: OperandOld(), Op: OpMultiply, Second: OperandOld()}

	// WHEN applied to 79
	got, err := op.Apply(79)

	// THEN both operands resolve to the current value
	require.NoError(t, err)
	assert.Equal(t, int64(6241), got)
}

func TestOperation_Apply_AddOverflow_Fails(t *testing.T) {
	op := Operation{First: OperandOld(), Op: OpAdd, Second: OperandLiteral(1)}
	_, err := op.Apply(math.MaxInt64)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestOperation_Apply_MultiplyOverflow_Fails(t *testing.T) {
	op := Operation{First: OperandOld(), Op: OpMultiply, Second: OperandOld()}
	_, err := op.Apply(4_000_000_000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestOperation_String_ReadsLikeTheGrammar(t *testing.T) {
	op := Operation{First: OperandOld(), Op: OpMultiply, Second: OperandLiteral(19)}
	assert.Equal(t, "new = old * 19", op.String())
}

func TestMulChecked_MinInt64Edge(t *testing.T) {
	_, ok := mulChecked(math.MinInt64, -1)
	assert.False(t, ok)
	_, ok = mulChecked(-1, math.MinInt64)
	assert.False(t, ok)
}

func TestDivisibilityTest_Holds(t *testing.T) {
	test := DivisibilityTest{Divisor: 23}
	assert.True(t, test.Holds(46))
	assert.False(t, test.Holds(47))
	assert.True(t, test.Holds(0))
}

func TestDivisibilityTest_Holds_IsIdempotent(t *testing.T) {
	// Re-running the test on the same unchanged value yields the same
	// outcome both times; the test itself mutates nothing.
	test := DivisibilityTest{Divisor: 19}
	v := int64(60)
	first := test.Holds(v)
	second := test.Holds(v)
	assert.Equal(t, first, second)
}

func TestThrowPreference_Target(t *testing.T) {
	pref := ThrowPreference{IfTrue: 2, IfFalse: 3}
	assert.Equal(t, MonkeyID(2), pref.Target(true))
	assert.Equal(t, MonkeyID(3), pref.Target(false))
}
