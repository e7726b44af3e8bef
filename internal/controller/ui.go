// Package controller provides output adapters for displaying gate verdicts.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// UI defines the interface for presenting gate results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplaySummary(ctx context.Context, verdict m.Verdict) error
	DisplayVerdict(ctx context.Context, verdict m.Verdict) error
	DisplaySurvivors(ctx context.Context, survivors []m.Mutant) error
}

// NewUI selects the UI implementation: interactive when attached to a
// terminal, plain text otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
