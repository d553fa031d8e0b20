package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulation_Validate_AcceptsExampleInstance(t *testing.T) {
	assert.NoError(t, exampleSimulation().Validate())
}

func TestSimulation_Validate_RejectsUnknownThrowTarget(t *testing.T) {
	simulation := exampleSimulation()
	simulation.Specs[0].Preference.IfTrue = 9

	err := simulation.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRouting)
}

func TestSimulation_Validate_RejectsNegativeThrowTarget(t *testing.T) {
	simulation := exampleSimulation()
	simulation.Specs[2].Preference.IfFalse = -1

	assert.ErrorIs(t, simulation.Validate(), ErrRouting)
}

func TestSimulation_Validate_RejectsNonPositiveDivisor(t *testing.T) {
	simulation := exampleSimulation()
	simulation.Specs[1].Test.Divisor = 0

	assert.Error(t, simulation.Validate())
}

func TestSimulation_Validate_RejectsMismatchedDomains(t *testing.T) {
	simulation := exampleSimulation()
	simulation.Queues = simulation.Queues[:3]

	assert.ErrorIs(t, simulation.Validate(), ErrState)
}

func TestSimulation_Clone_IsIndependent(t *testing.T) {
	// GIVEN a clone of the example instance
	original := exampleSimulation()
	clone := original.Clone()

	// WHEN the clone is run to completion
	_, err := NewSimulator(clone, ShortRunRounds, NewDivideRelief()).Run()
	require.NoError(t, err)

	// THEN the original's queues are untouched
	want := [][]int64{{79, 98}, {54, 65, 75, 74}, {79, 60, 97}, {74}}
	for id, items := range want {
		assert.Equal(t, items, original.Queues[id].Items(), "monkey %d", id)
	}
}

func TestSimulation_TotalItems(t *testing.T) {
	assert.Equal(t, 10, exampleSimulation().TotalItems())
}
