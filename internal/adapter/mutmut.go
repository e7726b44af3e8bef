package adapter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// mutmut prints a progress ticker during `mutmut run`; the final line
// carries the counters the gate needs:
//
//	272/272  🎉 250  ⏰ 0  🤔 0  🙁 22  🔇 0
//
// where 🎉 = killed, ⏰ = timeout, 🤔 = suspicious, 🙁 = survived and
// 🔇 = skipped. The counters are cumulative, so the last occurrence wins.
var (
	mutmutTickerRe = regexp.MustCompile(
		`(?s)(\d+)/(\d+).*?🎉\s*(\d+).*?⏰\s*(\d+).*?🤔\s*(\d+).*?🙁\s*(\d+).*?🔇\s*(\d+)`)

	// Older mutmut versions print only killed and survived.
	mutmutShortTickerRe = regexp.MustCompile(`(?s)(\d+)/(\d+).*?🎉\s*(\d+).*?🙁\s*(\d+)`)

	// `mutmut results` lists non-killed mutants one per line as
	// "<mutant id>: <status>".
	mutmutResultLineRe = regexp.MustCompile(`^(\S+):\s*([a-zA-Z_ -]+)$`)
)

// ParseMutmutTicker extracts the outcome tally from `mutmut run` output.
// The second return value is false when no ticker is present.
func ParseMutmutTicker(output string) (map[m.Outcome]int, bool) {
	if matches := mutmutTickerRe.FindAllStringSubmatch(output, -1); len(matches) > 0 {
		last := matches[len(matches)-1]

		return map[m.Outcome]int{
			m.OutcomeKilled:     atoi(last[3]),
			m.OutcomeTimeout:    atoi(last[4]),
			m.OutcomeSuspicious: atoi(last[5]),
			m.OutcomeSurvived:   atoi(last[6]),
			m.OutcomeSkipped:    atoi(last[7]),
		}, true
	}

	if matches := mutmutShortTickerRe.FindAllStringSubmatch(output, -1); len(matches) > 0 {
		last := matches[len(matches)-1]

		return map[m.Outcome]int{
			m.OutcomeKilled:   atoi(last[3]),
			m.OutcomeSurvived: atoi(last[4]),
		}, true
	}

	return nil, false
}

// ParseMutmutResults parses `mutmut results` output into a RunResult.
//
// Only the per-mutant "<id>: <status>" lines are consumed; section
// headers and hints are skipped. An empty input is a valid run with no
// surviving mutants.
func ParseMutmutResults(text string) (m.RunResult, error) {
	result := m.RunResult{Engine: "mutmut"}
	sawContent := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sawContent = true

		match := mutmutResultLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		result.Mutants = append(result.Mutants, m.Mutant{
			ID:      match[1],
			Outcome: m.ParseOutcome(match[2]),
		})
	}

	if sawContent && len(result.Mutants) == 0 {
		return m.RunResult{}, fmt.Errorf(
			"%w: mutmut results output contains no mutant lines", m.ErrParse)
	}

	return result, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
