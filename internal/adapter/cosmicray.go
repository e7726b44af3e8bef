package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// cosmic-ray dumps a session as line-delimited JSON: one job object per
// line, wrapped in loose "[" / "]" lines with trailing commas. Each job
// carries its mutants under "mutations" or "results".
type cosmicRayJob struct {
	Mutations []cosmicRayMutant `json:"mutations"`
	Results   []cosmicRayMutant `json:"results"`
}

type cosmicRayMutant struct {
	ModulePath    string `json:"module_path"`
	OperatorName  string `json:"operator_name"`
	Occurrence    int    `json:"occurrence"`
	TestOutcome   string `json:"test_outcome"`
	WorkerOutcome string `json:"worker_outcome"`
	Output        string `json:"output"`
	Diff          string `json:"diff"`
}

// cosmicRaySummary is the condensed report form holding only the final
// score percentage.
type cosmicRaySummary struct {
	MutationScore float64 `json:"mutation_score"`
}

// ParseCosmicRayDump parses a cosmic-ray session dump into a RunResult.
//
// Individually malformed lines are skipped with a warning; the dump as
// a whole is rejected when nothing in it parses.
func ParseCosmicRayDump(data []byte) (m.RunResult, error) {
	result := m.RunResult{Engine: "cosmic-ray"}
	sawContent := false

	for _, line := range strings.Split(string(data), "\n") {
		text := strings.TrimSuffix(strings.TrimSpace(line), ",")
		if text == "" || text == "[" || text == "]" {
			continue
		}

		sawContent = true

		var job cosmicRayJob
		if err := json.Unmarshal([]byte(text), &job); err != nil {
			slog.Warn("skipped invalid session dump line", "error", err)
			continue
		}

		mutants := job.Mutations
		if len(mutants) == 0 {
			mutants = job.Results
		}

		for _, mutant := range mutants {
			outcome := mutant.TestOutcome
			if outcome == "" {
				// A job that never ran its tests still reports what the
				// worker did to it (e.g. "incompetent").
				outcome = mutant.WorkerOutcome
			}

			result.Mutants = append(result.Mutants, m.Mutant{
				ID: fmt.Sprintf("%s:%s:%d",
					mutant.ModulePath, mutant.OperatorName, mutant.Occurrence),
				Location:   mutant.ModulePath,
				Operator:   mutant.OperatorName,
				Occurrence: mutant.Occurrence,
				Outcome:    m.ParseOutcome(outcome),
				Output:     mutant.Output,
				Diff:       mutant.Diff,
			})
		}
	}

	if sawContent && len(result.Mutants) == 0 {
		return m.RunResult{}, fmt.Errorf(
			"%w: session dump contains no mutant entries", m.ErrParse)
	}

	return result, nil
}

// ParseSummaryReport parses the condensed {"mutation_score": N} report.
// A missing score field counts as 0, matching the upstream report
// checker's behavior.
func ParseSummaryReport(data []byte) (m.RunResult, error) {
	var summary cosmicRaySummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return m.RunResult{}, fmt.Errorf("%w: invalid summary report: %v", m.ErrParse, err)
	}

	score := summary.MutationScore
	if err := validateSummaryScore(score); err != nil {
		return m.RunResult{}, err
	}

	return m.RunResult{Engine: "cosmic-ray", SummaryScore: &score}, nil
}

// validateSummaryScore rejects precomputed scores outside the percent
// range; a report claiming 150% or -3% is corrupt, not a passing run.
func validateSummaryScore(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 || score > 100 {
		return fmt.Errorf("%w: mutation score %.2f is outside [0, 100]", m.ErrParse, score)
	}

	return nil
}
