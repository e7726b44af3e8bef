package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

func TestNewGate_ValidatesMinScore(t *testing.T) {
	tests := []struct {
		name     string
		minScore float64
		wantErr  bool
	}{
		{"zero", 0, false},
		{"eighty", 80, false},
		{"hundred", 100, false},
		{"negative", -1, true},
		{"above hundred", 100.01, true},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGate(GateConfig{MinScore: tt.minScore, Policy: m.PolicyKillable})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, m.ErrConfig)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestNewGate_RejectsUnknownPolicy(t *testing.T) {
	_, err := NewGate(GateConfig{MinScore: 80, Policy: m.Policy("lenient")})
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrConfig)
}

func TestNewGate_DefaultsToKillablePolicy(t *testing.T) {
	gate, err := NewGate(GateConfig{MinScore: 80})
	require.NoError(t, err)

	verdict := gate.Check(m.RunResult{})
	assert.Equal(t, m.PolicyKillable, verdict.Policy)
}

func TestGateCheck_ScoreEqualToThresholdPasses(t *testing.T) {
	gate, err := NewGate(GateConfig{MinScore: 80, Policy: m.PolicyKillable})
	require.NoError(t, err)

	verdict := gate.Check(resultWithTally(map[m.Outcome]int{
		m.OutcomeKilled:   8,
		m.OutcomeSurvived: 2,
	}))

	assert.True(t, verdict.Pass)
	assert.InDelta(t, 80.0, verdict.Score, 1e-9)
	assert.Equal(t, 80.0, verdict.Threshold)
}

func TestGateCheck_ScoreJustBelowThresholdFails(t *testing.T) {
	gate, err := NewGate(GateConfig{MinScore: 80, Policy: m.PolicyKillable})
	require.NoError(t, err)

	// 7999 of 10000 killed: 79.99%.
	verdict := gate.Check(resultWithTally(map[m.Outcome]int{
		m.OutcomeKilled:   7999,
		m.OutcomeSurvived: 2001,
	}))

	assert.False(t, verdict.Pass)
	assert.InDelta(t, 79.99, verdict.Score, 1e-9)
}

func TestGateCheck_EmptyRunPasses(t *testing.T) {
	gate, err := NewGate(GateConfig{MinScore: 80, Policy: m.PolicyKillable})
	require.NoError(t, err)

	verdict := gate.Check(m.RunResult{})

	assert.True(t, verdict.Pass)
	assert.Equal(t, 100.0, verdict.Score)
	assert.Empty(t, verdict.Survivors)
}

func TestGateCheck_CollectsSurvivors(t *testing.T) {
	gate, err := NewGate(GateConfig{MinScore: 75, Policy: m.PolicyKillable})
	require.NoError(t, err)

	verdict := gate.Check(m.RunResult{
		Mutants: []m.Mutant{
			{ID: "m1", Outcome: m.OutcomeKilled},
			{ID: "m2", Outcome: m.OutcomeSurvived},
			{ID: "m3", Outcome: m.OutcomeSurvived},
			{ID: "m4", Outcome: m.OutcomeKilled},
		},
	})

	assert.False(t, verdict.Pass)
	require.Len(t, verdict.Survivors, 2)
	assert.Equal(t, "m2", verdict.Survivors[0].ID)
	assert.Equal(t, "m3", verdict.Survivors[1].ID)
}

func TestGateCheck_FailOnSurvivorsOverridesPassingScore(t *testing.T) {
	gate, err := NewGate(GateConfig{
		MinScore:        50,
		Policy:          m.PolicyKillable,
		FailOnSurvivors: true,
	})
	require.NoError(t, err)

	verdict := gate.Check(m.RunResult{
		Mutants: []m.Mutant{
			{ID: "m1", Outcome: m.OutcomeKilled},
			{ID: "m2", Outcome: m.OutcomeKilled},
			{ID: "m3", Outcome: m.OutcomeKilled},
			{ID: "m4", Outcome: m.OutcomeSurvived},
		},
	})

	assert.False(t, verdict.Pass)
	assert.InDelta(t, 75.0, verdict.Score, 1e-9)
}

func TestGateCheck_UsesSummaryScoreWhenPresent(t *testing.T) {
	gate, err := NewGate(GateConfig{MinScore: 70, Policy: m.PolicyKillable})
	require.NoError(t, err)

	score := 69.5
	verdict := gate.Check(m.RunResult{Engine: "cosmic-ray", SummaryScore: &score})

	assert.False(t, verdict.Pass)
	assert.Equal(t, 69.5, verdict.Score)

	score = 70.0
	verdict = gate.Check(m.RunResult{Engine: "cosmic-ray", SummaryScore: &score})
	assert.True(t, verdict.Pass)
}
