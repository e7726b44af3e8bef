package domain

import (
	"fmt"
	"math"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// GateConfig is the validated configuration of one gate evaluation.
// It is constructed once at process entry; the gate itself holds no
// other state.
type GateConfig struct {
	// MinScore is the minimum acceptable mutation score, in percent.
	MinScore float64

	// Policy selects how non-killed/non-survived outcomes are counted.
	Policy m.Policy

	// FailOnSurvivors fails the gate whenever any mutant survived,
	// even when the score clears the threshold.
	FailOnSurvivors bool
}

// Gate evaluates a mutation run against a configured minimum score.
type Gate struct {
	cfg GateConfig
}

// NewGate validates the configuration and builds a Gate.
func NewGate(cfg GateConfig) (*Gate, error) {
	if math.IsNaN(cfg.MinScore) || math.IsInf(cfg.MinScore, 0) {
		return nil, fmt.Errorf("%w: minimum score must be a finite number", m.ErrConfig)
	}

	if cfg.MinScore < 0 || cfg.MinScore > 100 {
		return nil, fmt.Errorf("%w: minimum score %.2f is outside [0, 100]", m.ErrConfig, cfg.MinScore)
	}

	if cfg.Policy == "" {
		cfg.Policy = m.PolicyKillable
	}

	if _, err := m.ParsePolicy(string(cfg.Policy)); err != nil {
		return nil, err
	}

	return &Gate{cfg: cfg}, nil
}

// Check scores the run and produces the verdict. Deterministic given
// identical input and configuration.
//
// The score passes on a non-strict comparison: score >= minimum.
func (g *Gate) Check(result m.RunResult) m.Verdict {
	counts := result.Counts()
	survivors := result.Survivors()

	var score float64

	killed, considered := 0, 0
	if result.SummaryScore != nil {
		// Engines exporting only an aggregate score leave no counts to
		// recompute from.
		score = *result.SummaryScore
	} else {
		score, killed, considered = Score(result, g.cfg.Policy)
	}

	pass := score >= g.cfg.MinScore
	if g.cfg.FailOnSurvivors && counts[m.OutcomeSurvived] > 0 {
		pass = false
	}

	return m.Verdict{
		Pass:       pass,
		Score:      score,
		Threshold:  g.cfg.MinScore,
		Policy:     g.cfg.Policy,
		Killed:     killed,
		Survived:   counts[m.OutcomeSurvived],
		Considered: considered,
		Counts:     counts,
		Survivors:  survivors,
	}
}
