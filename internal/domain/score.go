// Package domain holds the scoring and threshold logic of the gate.
package domain

import (
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// Score computes the mutation score (percent) for a run under the given
// counting policy.
//
// With PolicyKillable the denominator is killed+survived. PolicyStrict
// additionally counts timeouts and suspicious results against the score.
// Skipped and errored mutants never enter the denominator.
//
// A run with nothing to consider scores 100: there is no evidence of a
// test-suite gap, so the gate must not divide by zero nor fail.
func Score(result m.RunResult, policy m.Policy) (score float64, killed, considered int) {
	counts := result.Counts()

	killed = counts[m.OutcomeKilled]
	considered = killed + counts[m.OutcomeSurvived]

	if policy == m.PolicyStrict {
		considered += counts[m.OutcomeTimeout] + counts[m.OutcomeSuspicious]
	}

	if considered == 0 {
		return 100.0, killed, considered
	}

	return 100.0 * float64(killed) / float64(considered), killed, considered
}
