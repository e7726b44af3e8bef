package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

func TestLocalEngineAdapter_RunWithoutCommandIsConfigError(t *testing.T) {
	engine := NewLocalEngineAdapter(EngineConfig{}, NewReportStore())

	err := engine.RunMutations(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrConfig)
}

func TestLocalEngineAdapter_RunFailurePropagates(t *testing.T) {
	engine := NewLocalEngineAdapter(EngineConfig{
		RunCommand: []string{"sh", "-c", "echo boom >&2; exit 3"},
	}, NewReportStore())

	err := engine.RunMutations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLocalEngineAdapter_ResultsCommandCarriesTickerTally(t *testing.T) {
	engine := NewLocalEngineAdapter(EngineConfig{
		RunCommand:     []string{"sh", "-c", "echo '10/10  🎉 8  🙁 2'"},
		ResultsCommand: []string{"sh", "-c", "printf 'demo_a__mutmut_1: survived\\ndemo_b__mutmut_2: survived\\n'"},
		Format:         FormatMutmut,
	}, NewReportStore())

	ctx := context.Background()

	require.NoError(t, engine.RunMutations(ctx))

	result, err := engine.FetchResults(ctx)
	require.NoError(t, err)

	// Survivor identities come from the results query, the killed count
	// only from the run ticker.
	require.Len(t, result.Mutants, 2)
	assert.Equal(t, 8, result.Tally[m.OutcomeKilled])
	assert.Equal(t, 2, result.Tally[m.OutcomeSurvived])
}

func TestLocalEngineAdapter_FetchFromReportPath(t *testing.T) {
	report := writeArtifact(t, t.TempDir(), "report.yaml", `engine: mutgate
tally:
  killed: 5
  survived: 1
`)

	engine := NewLocalEngineAdapter(EngineConfig{
		RunCommand: []string{"true"},
		Report:     report,
		Format:     FormatAuto,
	}, NewReportStore())

	result, err := engine.FetchResults(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Tally[m.OutcomeKilled])
	assert.Equal(t, 1, result.Tally[m.OutcomeSurvived])
}

func TestLocalEngineAdapter_ReportDirShards(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "0.yaml", "engine: mutgate\ntally:\n  killed: 2\n")
	writeArtifact(t, dir, "1.yaml", "engine: mutgate\ntally:\n  killed: 3\n  survived: 1\n")

	engine := NewLocalEngineAdapter(EngineConfig{
		RunCommand: []string{"true"},
		Report:     m.Path(filepath.Clean(dir)),
		Format:     FormatAuto,
	}, NewReportStore())

	result, err := engine.FetchResults(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Tally[m.OutcomeKilled])
	assert.Equal(t, 1, result.Tally[m.OutcomeSurvived])
}
