package adapter

import (
	"context"
	"time"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// EngineAdapter abstracts the external mutation testing engine so the
// scoring and threshold logic can be tested without invoking the real
// tool.
type EngineAdapter interface {
	// RunMutations executes the engine's mutation run.
	RunMutations(ctx context.Context) error

	// FetchResults retrieves the outcomes of the completed run.
	FetchResults(ctx context.Context) (m.RunResult, error)
}

// EngineConfig describes how to invoke the external engine and where
// its results end up.
type EngineConfig struct {
	// RunCommand is the mutation run invocation, e.g. ["mutmut", "run"].
	RunCommand []string
	// ResultsCommand optionally queries the engine for per-mutant
	// results after the run, e.g. ["mutmut", "results"]. When empty the
	// results are loaded from Report instead.
	ResultsCommand []string
	WorkDir        string
	Timeout        time.Duration
	Report         m.Path
	Format         Format
}

// EngineFactory builds an EngineAdapter for a given configuration.
type EngineFactory func(cfg EngineConfig) EngineAdapter
