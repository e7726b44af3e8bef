package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ismaelsanroman/mutgate/internal/adapter"
	"github.com/ismaelsanroman/mutgate/internal/domain"
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

func TestSurvivorsCmd_PassesResolvedConfig(t *testing.T) {
	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	cmd := newTestRootCmd()
	cmd.AddCommand(newSurvivorsCmd())

	mockWf.On("Survivors", mock.Anything, mock.MatchedBy(func(args domain.SurvivorsArgs) bool {
		return args.Report == m.Path("shards") && args.Format == adapter.FormatCosmicRay
	})).Return(nil)

	cmd.SetArgs([]string{"survivors", "--report", "shards", "--format", "cosmic-ray"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWf.AssertExpectations(t)
}

func TestSurvivorsCmd_ParseErrorPropagates(t *testing.T) {
	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	cmd := newTestRootCmd()
	cmd.AddCommand(newSurvivorsCmd())

	mockWf.On("Survivors", mock.Anything, mock.Anything).Return(m.ErrParse)

	cmd.SetArgs([]string{"survivors", "--format", "auto"})
	err := cmd.Execute()
	require.Error(t, err)

	assert.Equal(t, 2, exitCode(err))
}
