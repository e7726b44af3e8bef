package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "mutgate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, output.String(), "quality gate")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"threshold failure", fmt.Errorf("check: %w", m.ErrThresholdNotMet), 1},
		{"parse error", fmt.Errorf("load: %w", m.ErrParse), 2},
		{"config error", fmt.Errorf("gate: %w", m.ErrConfig), 2},
		{"other error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestSplitCommand(t *testing.T) {
	assert.Equal(t, []string{"mutmut", "run"}, splitCommand("mutmut run"))
	assert.Empty(t, splitCommand(""))
	assert.Empty(t, splitCommand("   "))
}
