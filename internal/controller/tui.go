package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

var (
	tuiTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).Padding(0, 1)
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tuiDimStyle      = lipgloss.NewStyle().Faint(true)
	tuiBorderStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// TUI implements UI with an interactive survivors browser. Summary and
// verdict output fall back to the plain renderer.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplaySurvivors opens an interactive browser over the surviving
// mutants, showing the selected mutant's diff in a scrollable viewport.
func (t *TUI) DisplaySurvivors(ctx context.Context, survivors []m.Mutant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(survivors) == 0 {
		return t.SimpleUI.DisplaySurvivors(ctx, survivors)
	}

	model := newSurvivorsModel(survivors)

	program := tea.NewProgram(model,
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// listHeight is the number of survivor rows shown above the detail pane.
const listHeight = 8

// survivorsModel is the Bubble Tea model for browsing survivors.
type survivorsModel struct {
	survivors []m.Mutant
	cursor    int
	offset    int
	viewport  viewport.Model
	width     int
	height    int
	ready     bool
}

func newSurvivorsModel(survivors []m.Mutant) *survivorsModel {
	return &survivorsModel{survivors: survivors}
}

func (sm *survivorsModel) Init() tea.Cmd {
	return nil
}

func (sm *survivorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height

		detailHeight := msg.Height - listHeight - 6
		if detailHeight < 3 {
			detailHeight = 3
		}

		if !sm.ready {
			sm.viewport = viewport.New(msg.Width-4, detailHeight)
			sm.ready = true
		} else {
			sm.viewport.Width = msg.Width - 4
			sm.viewport.Height = detailHeight
		}

		sm.viewport.SetContent(sm.detailContent())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return sm, tea.Quit

		case "up", "k":
			if sm.cursor > 0 {
				sm.cursor--
				sm.syncCursor()
			}

		case "down", "j":
			if sm.cursor < len(sm.survivors)-1 {
				sm.cursor++
				sm.syncCursor()
			}

		default:
			var cmd tea.Cmd
			sm.viewport, cmd = sm.viewport.Update(msg)

			return sm, cmd
		}
	}

	return sm, nil
}

func (sm *survivorsModel) syncCursor() {
	if sm.cursor < sm.offset {
		sm.offset = sm.cursor
	}

	if sm.cursor >= sm.offset+listHeight {
		sm.offset = sm.cursor - listHeight + 1
	}

	if sm.ready {
		sm.viewport.SetContent(sm.detailContent())
		sm.viewport.GotoTop()
	}
}

func (sm *survivorsModel) detailContent() string {
	mutant := sm.survivors[sm.cursor]

	var b strings.Builder

	fmt.Fprintf(&b, "ID:       %s\n", mutant.ID)

	if mutant.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", mutant.Location)
	}

	if mutant.Operator != "" {
		fmt.Fprintf(&b, "Operator: %s\n", mutant.Operator)
	}

	if mutant.Diff != "" {
		fmt.Fprintf(&b, "\n%s", mutant.Diff)
	} else if mutant.Output != "" {
		fmt.Fprintf(&b, "\n%s", mutant.Output)
	} else {
		b.WriteString(tuiDimStyle.Render("\nNo diff available for this mutant."))
	}

	return b.String()
}

func (sm *survivorsModel) View() string {
	if !sm.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render(fmt.Sprintf("Surviving mutants (%d)", len(sm.survivors))))
	b.WriteString("\n\n")

	end := sm.offset + listHeight
	if end > len(sm.survivors) {
		end = len(sm.survivors)
	}

	for i := sm.offset; i < end; i++ {
		line := sm.survivors[i].ID
		if i == sm.cursor {
			b.WriteString(tuiSelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tuiBorderStyle.Render(sm.viewport.View()))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("↑/↓ select · q quit"))
	b.WriteString("\n")

	return b.String()
}
