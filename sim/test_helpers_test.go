package sim

// Shared test fixtures for the sim package.

// exampleSimulation returns the standard four-monkey instance used across
// simulator tests. Known results: 20 rounds with divide relief yield
// inspection counts 101/95/7/105 (product 10605); 10000 rounds with
// modulus relief yield a product of 2713310158.
func exampleSimulation() *Simulation {
	specs := []MonkeySpec{
		{
			Operation:  Operation{First: OperandOld(), Op: OpMultiply, Second: OperandLiteral(19)},
			Test:       DivisibilityTest{Divisor: 23},
			Preference: ThrowPreference{IfTrue: 2, IfFalse: 3},
		},
		{
			Operation:  Operation{First: OperandOld(), Op: OpAdd, Second: OperandLiteral(6)},
			Test:       DivisibilityTest{Divisor: 19},
			Preference: ThrowPreference{IfTrue: 2, IfFalse: 0},
		},
		{
			Operation:  Operation{First: OperandOld(), Op: OpMultiply, Second: OperandOld()},
			Test:       DivisibilityTest{Divisor: 13},
			Preference: ThrowPreference{IfTrue: 1, IfFalse: 3},
		},
		{
			Operation:  Operation{First: OperandOld(), Op: OpAdd, Second: OperandLiteral(3)},
			Test:       DivisibilityTest{Divisor: 17},
			Preference: ThrowPreference{IfTrue: 0, IfFalse: 1},
		},
	}
	items := [][]int64{
		{79, 98},
		{54, 65, 75, 74},
		{79, 60, 97},
		{74},
	}
	return NewSimulation(specs, items)
}

// pingPongSimulation returns a two-monkey instance where every item is
// always thrown to the other monkey (divisor 1, so every test passes).
func pingPongSimulation() *Simulation {
	specs := []MonkeySpec{
		{
			Operation:  Operation{First: OperandOld(), Op: OpAdd, Second: OperandLiteral(0)},
			Test:       DivisibilityTest{Divisor: 1},
			Preference: ThrowPreference{IfTrue: 1, IfFalse: 1},
		},
		{
			Operation:  Operation{First: OperandOld(), Op: OpAdd, Second: OperandLiteral(0)},
			Test:       DivisibilityTest{Divisor: 1},
			Preference: ThrowPreference{IfTrue: 0, IfFalse: 0},
		},
	}
	items := [][]int64{{9}, {6}}
	return NewSimulation(specs, items)
}
