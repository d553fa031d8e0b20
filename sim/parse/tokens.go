package parse

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes (unique; start at 1 to avoid clash with parsly.EOF).
const (
	numberCode = iota + 1
	colonCode
	commaCode
	plusCode
	starCode
	monkeyCode
	startingItemsCode
	operationCode
	newEqualsCode
	oldCode
	testCode
	divisibleByCode
	ifTrueCode
	ifFalseCode
	throwCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(0, "Whitespace", matcher.NewWhiteSpace())
	numberToken     = parsly.NewToken(numberCode, "Number", newNumberMatcher())
	colonToken      = parsly.NewToken(colonCode, ":", matcher.NewByte(':'))
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	plusToken       = parsly.NewToken(plusCode, "+", matcher.NewByte('+'))
	starToken       = parsly.NewToken(starCode, "*", matcher.NewByte('*'))

	monkeyToken        = parsly.NewToken(monkeyCode, "Monkey", matcher.NewFragment("Monkey"))
	startingItemsToken = parsly.NewToken(startingItemsCode, "Starting items", matcher.NewFragment("Starting items"))
	operationToken     = parsly.NewToken(operationCode, "Operation", matcher.NewFragment("Operation"))
	newEqualsToken     = parsly.NewToken(newEqualsCode, "new =", matcher.NewFragment("new ="))
	oldToken           = parsly.NewToken(oldCode, "old", matcher.NewFragment("old"))
	testToken          = parsly.NewToken(testCode, "Test", matcher.NewFragment("Test"))
	divisibleByToken   = parsly.NewToken(divisibleByCode, "divisible by", matcher.NewFragment("divisible by"))
	ifTrueToken        = parsly.NewToken(ifTrueCode, "If true", matcher.NewFragment("If true"))
	ifFalseToken       = parsly.NewToken(ifFalseCode, "If false", matcher.NewFragment("If false"))
	throwToken         = parsly.NewToken(throwCode, "throw to monkey", matcher.NewFragment("throw to monkey"))
)

// newNumberMatcher matches a run of decimal digits.
func newNumberMatcher() parsly.Matcher {
	return &numberMatcher{}
}

type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if input[i] < '0' || input[i] > '9' {
			break
		}
		matched++
	}
	return matched
}
