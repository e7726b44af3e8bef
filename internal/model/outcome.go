// Package model defines the data structures for the mutation gate.
package model

import "strings"

// Outcome classifies the fate of a single mutant as reported by a
// mutation testing engine.
type Outcome string

const (
	// OutcomeKilled indicates the mutant was detected by tests.
	OutcomeKilled Outcome = "killed"
	// OutcomeSurvived indicates the mutant was not detected by tests.
	OutcomeSurvived Outcome = "survived"
	// OutcomeSkipped indicates the mutant was never executed.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeTimeout indicates the test run exceeded its time limit.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeSuspicious indicates an inconclusive test result.
	OutcomeSuspicious Outcome = "suspicious"
	// OutcomeError indicates the engine failed to test the mutant.
	OutcomeError Outcome = "error"
)

// outcomeAliases maps upstream engine vocabulary onto Outcome values.
// mutmut reports "bad timeout"/"ok suspicious" style words, cosmic-ray
// reports "incompetent" for mutants its worker could not execute.
var outcomeAliases = map[string]Outcome{
	"killed":        OutcomeKilled,
	"survived":      OutcomeSurvived,
	"bad_survived":  OutcomeSurvived,
	"skipped":       OutcomeSkipped,
	"untested":      OutcomeSkipped,
	"no_tests":      OutcomeSkipped,
	"timeout":       OutcomeTimeout,
	"bad_timeout":   OutcomeTimeout,
	"suspicious":    OutcomeSuspicious,
	"ok_suspicious": OutcomeSuspicious,
	"incompetent":   OutcomeError,
	"error":         OutcomeError,
}

// ParseOutcome normalizes an engine-reported status word into an Outcome.
// Unknown words map to OutcomeError so they never inflate the score.
func ParseOutcome(word string) Outcome {
	normalized := strings.ToLower(strings.TrimSpace(word))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	if outcome, ok := outcomeAliases[normalized]; ok {
		return outcome
	}

	return OutcomeError
}
