package model

// Path represents a file system path.
type Path string

// Mutant is a single mutant outcome from a mutation testing run.
type Mutant struct {
	ID         string  `yaml:"id"`
	Location   string  `yaml:"location,omitempty"`
	Operator   string  `yaml:"operator,omitempty"`
	Occurrence int     `yaml:"occurrence,omitempty"`
	Outcome    Outcome `yaml:"outcome"`
	Diff       string  `yaml:"diff,omitempty"`
	Output     string  `yaml:"output,omitempty"`
	Original   string  `yaml:"original,omitempty"`
	Mutated    string  `yaml:"mutated,omitempty"`
}

// RunResult is the complete set of mutant outcomes for one run of a
// mutation testing engine.
//
// Mutants may hold only a subset of the run: mutmut's results query lists
// the non-killed mutants only, while the killed count is reported in the
// run ticker. Tally carries such aggregate counts; when present it takes
// precedence over counting Mutants.
//
// SummaryScore is set by engines that export only a precomputed score
// percentage with no per-mutant detail.
type RunResult struct {
	Engine       string          `yaml:"engine,omitempty"`
	Mutants      []Mutant        `yaml:"mutants,omitempty"`
	Tally        map[Outcome]int `yaml:"tally,omitempty"`
	SummaryScore *float64        `yaml:"summary_score,omitempty"`
}

// Counts returns outcome counts for the run, preferring the aggregate
// tally when the engine provided one.
func (r RunResult) Counts() map[Outcome]int {
	if len(r.Tally) > 0 {
		counts := make(map[Outcome]int, len(r.Tally))
		for outcome, n := range r.Tally {
			counts[outcome] = n
		}

		return counts
	}

	counts := make(map[Outcome]int)
	for _, mutant := range r.Mutants {
		counts[mutant.Outcome]++
	}

	return counts
}

// Survivors returns the mutants that tests failed to detect.
func (r RunResult) Survivors() []Mutant {
	var survivors []Mutant

	for _, mutant := range r.Mutants {
		if mutant.Outcome == OutcomeSurvived {
			survivors = append(survivors, mutant)
		}
	}

	return survivors
}

// Merge appends another run's mutants and tallies into this one.
// Used when a report directory holds one file per shard.
func (r *RunResult) Merge(other RunResult) {
	if r.Engine == "" {
		r.Engine = other.Engine
	}

	r.Mutants = append(r.Mutants, other.Mutants...)

	if len(other.Tally) > 0 {
		if r.Tally == nil {
			r.Tally = make(map[Outcome]int, len(other.Tally))
		}

		for outcome, n := range other.Tally {
			r.Tally[outcome] += n
		}
	}

	if other.SummaryScore != nil {
		r.SummaryScore = other.SummaryScore
	}
}
