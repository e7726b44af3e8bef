package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// DefaultEngineTimeout bounds a single engine invocation. Mutation runs
// are long; the engine itself parallelizes, the gate just waits.
const DefaultEngineTimeout = 30 * time.Minute

// LocalEngineAdapter invokes the mutation engine via os/exec.
type LocalEngineAdapter struct {
	cfg     EngineConfig
	reports ReportStore

	// tally captured from the run output (mutmut's ticker) so that
	// killed counts survive even when the results query lists only the
	// non-killed mutants.
	tally map[m.Outcome]int
}

// NewLocalEngineAdapter constructs a LocalEngineAdapter. Results are
// parsed from the results command output when one is configured,
// otherwise loaded from the configured report path.
func NewLocalEngineAdapter(cfg EngineConfig, reports ReportStore) EngineAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultEngineTimeout
	}

	return &LocalEngineAdapter{cfg: cfg, reports: reports}
}

// RunMutations executes the engine's mutation run command.
func (a *LocalEngineAdapter) RunMutations(ctx context.Context) error {
	if len(a.cfg.RunCommand) == 0 {
		return fmt.Errorf("%w: engine command is not configured", m.ErrConfig)
	}

	output, err := a.execute(ctx, a.cfg.RunCommand)
	if err != nil {
		return fmt.Errorf("engine run failed: %w", err)
	}

	// mutmut reports killed/survived counters only in its run ticker;
	// keep them for FetchResults.
	if tally, ok := ParseMutmutTicker(output); ok {
		a.tally = tally
		slog.Info("engine run completed",
			"killed", tally[m.OutcomeKilled],
			"survived", tally[m.OutcomeSurvived])
	} else {
		slog.Info("engine run completed", "output_bytes", len(output))
	}

	return nil
}

// FetchResults retrieves the outcomes of the completed run.
func (a *LocalEngineAdapter) FetchResults(ctx context.Context) (m.RunResult, error) {
	if len(a.cfg.ResultsCommand) > 0 {
		output, err := a.execute(ctx, a.cfg.ResultsCommand)
		if err != nil {
			return m.RunResult{}, fmt.Errorf("engine results query failed: %w", err)
		}

		result, err := ParseMutmutResults(output)
		if err != nil {
			return m.RunResult{}, err
		}

		if len(a.tally) > 0 {
			result.Tally = a.tally
		}

		return result, nil
	}

	return a.reports.LoadResult(ctx, a.cfg.Report, a.cfg.Format)
}

func (a *LocalEngineAdapter) execute(ctx context.Context, command []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	slog.Debug("running engine command", "command", strings.Join(command, " "))

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = a.cfg.WorkDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%s: %w: %s",
			command[0], err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
