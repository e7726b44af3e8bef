package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// summaryOrder fixes the row order of the outcome table.
var summaryOrder = []m.Outcome{
	m.OutcomeKilled,
	m.OutcomeSurvived,
	m.OutcomeTimeout,
	m.OutcomeSuspicious,
	m.OutcomeSkipped,
	m.OutcomeError,
}

// DisplaySummary prints the outcome counts and the computed score.
func (s *SimpleUI) DisplaySummary(ctx context.Context, verdict m.Verdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("\n%s", renderSummaryTable(verdict))
}

func renderSummaryTable(verdict m.Verdict) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Mutants"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, outcome := range summaryOrder {
		count := verdict.Counts[outcome]
		if count == 0 {
			continue
		}

		table.Append([]string{string(outcome), fmt.Sprintf("%d", count)})

		total += count
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", total),
		fmt.Sprintf("Score %.2f%%", verdict.Score),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayVerdict prints the pass/fail status line.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, verdict m.Verdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if verdict.Pass {
		return s.printf("\n%s mutation score %.2f%% >= %.2f%%\n",
			color.New(color.FgGreen, color.Bold).Sprint("PASS"),
			verdict.Score, verdict.Threshold)
	}

	return s.printf("\n%s mutation score %.2f%% < %.2f%% (%d surviving mutants)\n",
		color.New(color.FgRed, color.Bold).Sprint("FAIL"),
		verdict.Score, verdict.Threshold, verdict.Survived)
}

// DisplaySurvivors lists the surviving mutants.
func (s *SimpleUI) DisplaySurvivors(ctx context.Context, survivors []m.Mutant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(survivors) == 0 {
		return s.printf("No surviving mutants.\n")
	}

	if err := s.printf("Surviving mutants (%d):\n", len(survivors)); err != nil {
		return err
	}

	for _, mutant := range survivors {
		line := fmt.Sprintf("  ✗ %s", mutant.ID)
		if mutant.Location != "" && mutant.Location != mutant.ID {
			line += fmt.Sprintf(" in %s", mutant.Location)
		}

		if mutant.Operator != "" {
			line += fmt.Sprintf(" (%s)", mutant.Operator)
		}

		if err := s.printf("%s\n", line); err != nil {
			return err
		}
	}

	return nil
}

// printf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
