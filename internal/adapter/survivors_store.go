package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// SurvivorsStore persists the surviving mutants of a failed gate check
// for later diagnosis.
type SurvivorsStore interface {
	SaveSurvivors(path m.Path, verdict m.Verdict) error
}

// markdownSurvivorsStore writes the survivors log as a markdown file.
type markdownSurvivorsStore struct {
	now func() time.Time
}

// NewSurvivorsStore creates a markdown SurvivorsStore.
func NewSurvivorsStore() SurvivorsStore {
	return &markdownSurvivorsStore{now: time.Now}
}

func (s *markdownSurvivorsStore) SaveSurvivors(path m.Path, verdict m.Verdict) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create survivors log directory: %w", err)
		}
	}

	content := renderSurvivorsMarkdown(verdict, s.now())

	if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write survivors log: %w", err)
	}

	slog.Info("saved survivors log", "path", path, "survivors", len(verdict.Survivors))

	return nil
}

func renderSurvivorsMarkdown(verdict m.Verdict, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Surviving mutants\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", verdict.RunID)
	fmt.Fprintf(&b, "- Date: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Score: %.2f%% (minimum %.2f%%, policy %s)\n",
		verdict.Score, verdict.Threshold, verdict.Policy)
	fmt.Fprintf(&b, "- Killed: %d | Survived: %d | Considered: %d\n\n",
		verdict.Killed, verdict.Survived, verdict.Considered)

	if len(verdict.Survivors) == 0 {
		b.WriteString("No surviving mutants were reported.\n")
		return b.String()
	}

	b.WriteString("| ID | Location | Operator | Outcome |\n")
	b.WriteString("|----|----------|----------|--------|\n")

	for _, mutant := range verdict.Survivors {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
			mutant.ID, mutant.Location, mutant.Operator, mutant.Outcome)
	}

	for _, mutant := range verdict.Survivors {
		diff := mutantDiff(mutant)
		if diff == "" {
			continue
		}

		fmt.Fprintf(&b, "\n## `%s`\n\n```diff\n%s\n```\n", mutant.ID, strings.TrimRight(diff, "\n"))
	}

	return b.String()
}

// mutantDiff returns the engine-supplied diff, or derives one from the
// original/mutated snippets when only those are available.
func mutantDiff(mutant m.Mutant) string {
	if mutant.Diff != "" {
		return mutant.Diff
	}

	if mutant.Original == "" && mutant.Mutated == "" {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(mutant.Original),
		B:        difflib.SplitLines(mutant.Mutated),
		FromFile: "original",
		ToFile:   "mutated",
		Context:  3,
	})
	if err != nil {
		slog.Warn("failed to render mutant diff", "mutant", mutant.ID, "error", err)
		return ""
	}

	return diff
}
