package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunResult_CountsFromMutants(t *testing.T) {
	result := RunResult{
		Mutants: []Mutant{
			{ID: "m1", Outcome: OutcomeKilled},
			{ID: "m2", Outcome: OutcomeKilled},
			{ID: "m3", Outcome: OutcomeSurvived},
			{ID: "m4", Outcome: OutcomeSkipped},
		},
	}

	counts := result.Counts()

	assert.Equal(t, 2, counts[OutcomeKilled])
	assert.Equal(t, 1, counts[OutcomeSurvived])
	assert.Equal(t, 1, counts[OutcomeSkipped])
}

func TestRunResult_TallyTakesPrecedence(t *testing.T) {
	// mutmut lists only non-killed mutants; the tally carries the rest.
	result := RunResult{
		Mutants: []Mutant{
			{ID: "s1", Outcome: OutcomeSurvived},
		},
		Tally: map[Outcome]int{
			OutcomeKilled:   250,
			OutcomeSurvived: 17,
		},
	}

	counts := result.Counts()

	assert.Equal(t, 250, counts[OutcomeKilled])
	assert.Equal(t, 17, counts[OutcomeSurvived])
}

func TestRunResult_Survivors(t *testing.T) {
	result := RunResult{
		Mutants: []Mutant{
			{ID: "k1", Outcome: OutcomeKilled},
			{ID: "s1", Outcome: OutcomeSurvived},
			{ID: "t1", Outcome: OutcomeTimeout},
			{ID: "s2", Outcome: OutcomeSurvived},
		},
	}

	survivors := result.Survivors()

	require.Len(t, survivors, 2)
	assert.Equal(t, "s1", survivors[0].ID)
	assert.Equal(t, "s2", survivors[1].ID)
}

func TestRunResult_Merge(t *testing.T) {
	var merged RunResult

	merged.Merge(RunResult{
		Engine:  "mutgate",
		Mutants: []Mutant{{ID: "a", Outcome: OutcomeKilled}},
		Tally:   map[Outcome]int{OutcomeKilled: 1},
	})
	merged.Merge(RunResult{
		Mutants: []Mutant{{ID: "b", Outcome: OutcomeSurvived}},
		Tally:   map[Outcome]int{OutcomeKilled: 2, OutcomeSurvived: 1},
	})

	assert.Equal(t, "mutgate", merged.Engine)
	require.Len(t, merged.Mutants, 2)
	assert.Equal(t, 3, merged.Tally[OutcomeKilled])
	assert.Equal(t, 1, merged.Tally[OutcomeSurvived])
}
