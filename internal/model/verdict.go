package model

import "fmt"

// Policy selects how outcomes other than killed/survived factor into
// the mutation score. The upstream engines disagree on this, so it is
// an explicit configuration choice rather than an assumption.
type Policy string

const (
	// PolicyKillable scores killed/(killed+survived); timeouts,
	// suspicious results and skipped mutants are excluded from the
	// denominator. This is mutmut's notion of the kill rate.
	PolicyKillable Policy = "killable"

	// PolicyStrict counts timeouts and suspicious results against the
	// score, the way cosmic-ray's killed/total metric does. Skipped
	// mutants stay excluded under every policy.
	PolicyStrict Policy = "strict"
)

// ParsePolicy validates a configured policy name.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case PolicyKillable:
		return PolicyKillable, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}

	return "", fmt.Errorf("%w: unknown policy %q", ErrConfig, name)
}

// Verdict is the outcome of one gate evaluation. It exists only to
// drive the process exit status and the operator-facing report.
type Verdict struct {
	RunID      string
	Pass       bool
	Score      float64 // percent, in [0, 100]
	Threshold  float64 // percent, in [0, 100]
	Policy     Policy
	Killed     int
	Survived   int
	Considered int
	Counts     map[Outcome]int
	Survivors  []Mutant
}
