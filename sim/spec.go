// Defines the immutable per-monkey configuration: the worry operation,
// the divisibility test, and the throw preference. Specs are created once
// by the loader and never mutated by the simulator.

package sim

import "fmt"

// MonkeyID identifies a monkey. IDs are dense and zero-based; monkeys take
// their turns within a round in ascending MonkeyID order.
type MonkeyID int

// Operator combines the two operands of an Operation.
type Operator string

const (
	OpAdd      Operator = "+"
	OpMultiply Operator = "*"
)

// Operand is one side of an Operation: either the item's current worry
// level ("old" in the input grammar) or a fixed literal.
type Operand struct {
	Old     bool  // true: substitute the current worry level
	Literal int64 // used when Old is false
}

// OperandOld returns the operand that resolves to the current worry level.
func OperandOld() Operand {
	return Operand{Old: true}
}

// OperandLiteral returns a fixed-value operand.
func OperandLiteral(v int64) Operand {
	return Operand{Literal: v}
}

// resolve substitutes the current worry level into an "old" operand.
func (o Operand) resolve(old int64) int64 {
	if o.Old {
		return old
	}
	return o.Literal
}

func (o Operand) String() string {
	if o.Old {
		return "old"
	}
	return fmt.Sprint(o.Literal)
}

// Operation computes a monkey's new worry level from the current one.
// Both operands may refer to the current value (e.g. "old * old").
type Operation struct {
	First  Operand
	Op     Operator
	Second Operand
}

func (op Operation) String() string {
	return fmt.Sprintf("new = %s %s %s", op.First, op.Op, op.Second)
}

// DivisibilityTest decides which throw target receives an item.
// The divisor is guaranteed positive by the loader.
type DivisibilityTest struct {
	Divisor int64
}

// Holds reports whether v is divisible by the configured divisor.
func (t DivisibilityTest) Holds(v int64) bool {
	return v%t.Divisor == 0
}

// ThrowPreference names the target monkey for each test outcome.
type ThrowPreference struct {
	IfTrue  MonkeyID
	IfFalse MonkeyID
}

// Target selects the throw target for a test outcome.
func (p ThrowPreference) Target(divisible bool) MonkeyID {
	if divisible {
		return p.IfTrue
	}
	return p.IfFalse
}

// MonkeySpec is the immutable configuration of one monkey.
type MonkeySpec struct {
	Operation  Operation
	Test       DivisibilityTest
	Preference ThrowPreference
}
