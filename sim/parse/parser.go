// Package parse loads the textual monkey grammar into a sim.Simulation.
//
// The grammar, one block per monkey, blocks separated by a blank line:
//
//	Monkey <id>:
//	  Starting items: <int>[, <int>]*
//	  Operation: new = old <+|*> <old|int>
//	  Test: divisible by <positive int>
//	    If true: throw to monkey <id>
//	    If false: throw to monkey <id>
//
// The loader is the only component that touches text; the sim package
// consumes an already-validated Simulation.
package parse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/viant/parsly"

	"github.com/monkey-sim/monkey-sim/sim"
)

// ErrSyntax reports a malformed monkey specification. Every parse failure
// wraps it, so callers can distinguish bad input from engine errors with
// errors.Is.
var ErrSyntax = errors.New("malformed monkey specification")

// LoadFile reads and parses a monkey specification file.
func LoadFile(path string) (*sim.Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading monkey specification: %w", err)
	}
	return Load(data)
}

// Load parses a monkey specification and returns a validated Simulation.
// Monkey IDs must be dense, zero-based, and in ascending order.
func Load(data []byte) (*sim.Simulation, error) {
	p := &parser{cursor: parsly.NewCursor("", data, 0)}
	return p.parse()
}

type parser struct {
	cursor *parsly.Cursor
}

func (p *parser) parse() (*sim.Simulation, error) {
	var (
		specs []sim.MonkeySpec
		items [][]int64
	)
	for {
		match := p.cursor.MatchAfterOptional(whitespaceToken, monkeyToken)
		if match.Code == parsly.EOF {
			break
		}
		if match.Code != monkeyCode {
			return nil, p.syntaxError(monkeyToken)
		}
		id, spec, starting, err := p.parseMonkey()
		if err != nil {
			return nil, err
		}
		if int(id) != len(specs) {
			return nil, fmt.Errorf("%w: monkey IDs must be dense and ascending, got %d after %d monkeys", ErrSyntax, id, len(specs))
		}
		specs = append(specs, spec)
		items = append(items, starting)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no monkey blocks found", ErrSyntax)
	}
	simulation := sim.NewSimulation(specs, items)
	if err := simulation.Validate(); err != nil {
		return nil, err
	}
	return simulation, nil
}

// parseMonkey parses one block; the "Monkey" keyword is already consumed.
func (p *parser) parseMonkey() (sim.MonkeyID, sim.MonkeySpec, []int64, error) {
	var spec sim.MonkeySpec

	// Monkey N:
	id, err := p.expectNumber("monkey id")
	if err != nil {
		return 0, spec, nil, err
	}
	if err := p.expect(colonToken, colonCode); err != nil {
		return 0, spec, nil, err
	}

	// Starting items: 79, 98
	if err := p.expect(startingItemsToken, startingItemsCode); err != nil {
		return 0, spec, nil, err
	}
	if err := p.expect(colonToken, colonCode); err != nil {
		return 0, spec, nil, err
	}
	items, err := p.parseItemList()
	if err != nil {
		return 0, spec, nil, err
	}

	// Operation: new = old * 19
	if err := p.expect(operationToken, operationCode); err != nil {
		return 0, spec, nil, err
	}
	if err := p.expect(colonToken, colonCode); err != nil {
		return 0, spec, nil, err
	}
	if err := p.expect(newEqualsToken, newEqualsCode); err != nil {
		return 0, spec, nil, err
	}
	spec.Operation, err = p.parseOperation()
	if err != nil {
		return 0, spec, nil, err
	}

	// Test: divisible by 23
	if err := p.expect(testToken, testCode); err != nil {
		return 0, spec, nil, err
	}
	if err := p.expect(colonToken, colonCode); err != nil {
		return 0, spec, nil, err
	}
	if err := p.expect(divisibleByToken, divisibleByCode); err != nil {
		return 0, spec, nil, err
	}
	divisor, err := p.expectNumber("test divisor")
	if err != nil {
		return 0, spec, nil, err
	}
	if divisor <= 0 {
		return 0, spec, nil, fmt.Errorf("%w: monkey %d: test divisor must be positive, got %d", ErrSyntax, id, divisor)
	}
	spec.Test = sim.DivisibilityTest{Divisor: divisor}

	// If true / If false branches
	spec.Preference.IfTrue, err = p.parseThrow(ifTrueToken, ifTrueCode)
	if err != nil {
		return 0, spec, nil, err
	}
	spec.Preference.IfFalse, err = p.parseThrow(ifFalseToken, ifFalseCode)
	if err != nil {
		return 0, spec, nil, err
	}

	return sim.MonkeyID(id), spec, items, nil
}

// parseItemList parses a comma-separated list of starting worry levels.
func (p *parser) parseItemList() ([]int64, error) {
	var items []int64
	for {
		v, err := p.expectNumber("starting item")
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if p.cursor.MatchAfterOptional(whitespaceToken, commaToken).Code != commaCode {
			return items, nil
		}
	}
}

// parseOperation parses "<old|int> <+|*> <old|int>"; "new =" is already consumed.
func (p *parser) parseOperation() (sim.Operation, error) {
	var op sim.Operation

	first, err := p.parseOperand()
	if err != nil {
		return op, err
	}
	op.First = first

	match := p.cursor.MatchAfterOptional(whitespaceToken, plusToken, starToken)
	switch match.Code {
	case plusCode:
		op.Op = sim.OpAdd
	case starCode:
		op.Op = sim.OpMultiply
	default:
		return op, p.syntaxError(plusToken, starToken)
	}

	second, err := p.parseOperand()
	if err != nil {
		return op, err
	}
	op.Second = second
	return op, nil
}

func (p *parser) parseOperand() (sim.Operand, error) {
	match := p.cursor.MatchAfterOptional(whitespaceToken, oldToken, numberToken)
	switch match.Code {
	case oldCode:
		return sim.OperandOld(), nil
	case numberCode:
		v, err := strconv.ParseInt(match.Text(p.cursor), 10, 64)
		if err != nil {
			return sim.Operand{}, fmt.Errorf("%w: operand: %v", ErrSyntax, err)
		}
		return sim.OperandLiteral(v), nil
	default:
		return sim.Operand{}, p.syntaxError(oldToken, numberToken)
	}
}

// parseThrow parses "If true: throw to monkey N" (or the false branch).
func (p *parser) parseThrow(branch *parsly.Token, branchCode int) (sim.MonkeyID, error) {
	if err := p.expect(branch, branchCode); err != nil {
		return 0, err
	}
	if err := p.expect(colonToken, colonCode); err != nil {
		return 0, err
	}
	if err := p.expect(throwToken, throwCode); err != nil {
		return 0, err
	}
	target, err := p.expectNumber("throw target")
	if err != nil {
		return 0, err
	}
	return sim.MonkeyID(target), nil
}

// expect consumes the given token, skipping leading whitespace.
func (p *parser) expect(token *parsly.Token, code int) error {
	if p.cursor.MatchAfterOptional(whitespaceToken, token).Code != code {
		return p.syntaxError(token)
	}
	return nil
}

// expectNumber consumes a decimal number, skipping leading whitespace.
func (p *parser) expectNumber(what string) (int64, error) {
	match := p.cursor.MatchAfterOptional(whitespaceToken, numberToken)
	if match.Code != numberCode {
		return 0, fmt.Errorf("%w: expected %s: %v", ErrSyntax, what, p.cursor.NewError(numberToken))
	}
	v, err := strconv.ParseInt(match.Text(p.cursor), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSyntax, what, err)
	}
	return v, nil
}

func (p *parser) syntaxError(expected ...*parsly.Token) error {
	return fmt.Errorf("%w: %v", ErrSyntax, p.cursor.NewError(expected...))
}
