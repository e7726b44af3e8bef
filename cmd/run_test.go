package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ismaelsanroman/mutgate/internal/domain"
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

func TestRunCmd_PassesEngineConfig(t *testing.T) {
	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	cmd := newTestRootCmd()
	cmd.AddCommand(newRunCmd())

	mockWf.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]string{"mutmut", "run"}, args.Engine.RunCommand) &&
			assert.ObjectsAreEqual([]string{"mutmut", "results"}, args.Engine.ResultsCommand) &&
			args.Engine.Timeout == 600*time.Second &&
			args.Gate.MinScore == 90
	})).Return(m.Verdict{Pass: true}, nil)

	cmd.SetArgs([]string{
		"run",
		"--engine", "mutmut run",
		"--engine-results", "mutmut results",
		"--engine-timeout", "600",
		"--min-score", "90",
		"--policy", "killable",
		"--format", "auto",
	})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWf.AssertExpectations(t)
}

func TestRunCmd_ThresholdFailurePropagates(t *testing.T) {
	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	cmd := newTestRootCmd()
	cmd.AddCommand(newRunCmd())

	mockWf.On("Run", mock.Anything, mock.Anything).
		Return(m.Verdict{Pass: false}, m.ErrThresholdNotMet)

	cmd.SetArgs([]string{"run", "--engine", "mutmut run", "--policy", "killable", "--format", "auto"})
	err := cmd.Execute()
	require.Error(t, err)

	assert.ErrorIs(t, err, m.ErrThresholdNotMet)
}
