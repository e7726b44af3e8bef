package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ismaelsanroman/mutgate/internal/adapter"
	"github.com/ismaelsanroman/mutgate/internal/controller"
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// CheckArgs configures a gate check over an existing results artifact.
type CheckArgs struct {
	Report m.Path
	Format adapter.Format
	Gate   GateConfig

	// SurvivorsLog is where surviving mutants are persisted when the
	// gate fails. Empty disables the log.
	SurvivorsLog m.Path
}

// RunArgs configures a full engine run followed by a gate check.
type RunArgs struct {
	CheckArgs
	Engine adapter.EngineConfig
}

// SurvivorsArgs configures the survivors listing.
type SurvivorsArgs struct {
	Report m.Path
	Format adapter.Format
}

// Workflow orchestrates the gate: obtain results, score them, enforce
// the threshold, persist survivors and present the verdict.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (m.Verdict, error)
	Run(ctx context.Context, args RunArgs) (m.Verdict, error)
	Survivors(ctx context.Context, args SurvivorsArgs) error
}

type gateWorkflow struct {
	adapter.ReportStore
	adapter.SurvivorsStore
	controller.UI

	newEngine adapter.EngineFactory
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	reports adapter.ReportStore,
	survivors adapter.SurvivorsStore,
	ui controller.UI,
	newEngine adapter.EngineFactory,
) Workflow {
	return &gateWorkflow{
		ReportStore:    reports,
		SurvivorsStore: survivors,
		UI:             ui,
		newEngine:      newEngine,
	}
}

// Check implements the gate over an existing results artifact.
func (w *gateWorkflow) Check(ctx context.Context, args CheckArgs) (m.Verdict, error) {
	gate, err := NewGate(args.Gate)
	if err != nil {
		return m.Verdict{}, err
	}

	result, err := w.LoadResult(ctx, args.Report, args.Format)
	if err != nil {
		slog.Error("failed to load results artifact", "path", args.Report, "error", err)
		return m.Verdict{}, err
	}

	return w.evaluate(ctx, gate, result, args)
}

// Run invokes the external engine and gates its results.
func (w *gateWorkflow) Run(ctx context.Context, args RunArgs) (m.Verdict, error) {
	// Validate the gate configuration before spending minutes on the
	// mutation run.
	gate, err := NewGate(args.Gate)
	if err != nil {
		return m.Verdict{}, err
	}

	if len(args.Engine.RunCommand) == 0 {
		return m.Verdict{}, fmt.Errorf("%w: engine command is not configured", m.ErrConfig)
	}

	engine := w.newEngine(args.Engine)

	slog.Info("starting mutation run", "command", args.Engine.RunCommand)

	if err := engine.RunMutations(ctx); err != nil {
		slog.Error("mutation run failed", "error", err)
		return m.Verdict{}, err
	}

	result, err := engine.FetchResults(ctx)
	if err != nil {
		slog.Error("failed to fetch mutation results", "error", err)
		return m.Verdict{}, err
	}

	// Results queried from the engine exist only in memory; persist them
	// to the report path so a later `survivors` invocation can load them.
	if len(args.Engine.ResultsCommand) > 0 && args.Report != "" {
		if err := w.SaveResult(args.Report, result); err != nil {
			slog.Error("failed to save report", "path", args.Report, "error", err)
			return m.Verdict{}, err
		}
	}

	return w.evaluate(ctx, gate, result, args.CheckArgs)
}

// Survivors loads a results artifact and presents the surviving mutants.
func (w *gateWorkflow) Survivors(ctx context.Context, args SurvivorsArgs) error {
	result, err := w.LoadResult(ctx, args.Report, args.Format)
	if err != nil {
		return err
	}

	return w.DisplaySurvivors(ctx, result.Survivors())
}

func (w *gateWorkflow) evaluate(ctx context.Context, gate *Gate, result m.RunResult, args CheckArgs) (m.Verdict, error) {
	verdict := gate.Check(result)
	verdict.RunID = uuid.NewString()

	slog.Info("gate verdict",
		"run_id", verdict.RunID,
		"pass", verdict.Pass,
		"score", verdict.Score,
		"threshold", verdict.Threshold,
		"killed", verdict.Killed,
		"survived", verdict.Survived,
	)

	if err := w.DisplaySummary(ctx, verdict); err != nil {
		return verdict, err
	}

	if err := w.DisplayVerdict(ctx, verdict); err != nil {
		return verdict, err
	}

	if !verdict.Pass && args.SurvivorsLog != "" {
		if err := w.SaveSurvivors(args.SurvivorsLog, verdict); err != nil {
			return verdict, err
		}
	}

	if !verdict.Pass {
		if verdict.Score >= verdict.Threshold {
			// FailOnSurvivors tripped despite a passing score.
			return verdict, fmt.Errorf("%w: %d mutants survived",
				m.ErrThresholdNotMet, verdict.Survived)
		}

		return verdict, fmt.Errorf("%w: %.2f%% < %.2f%%",
			m.ErrThresholdNotMet, verdict.Score, verdict.Threshold)
	}

	return verdict, nil
}
