package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		word string
		want Outcome
	}{
		{"killed", OutcomeKilled},
		{"KILLED", OutcomeKilled},
		{" survived ", OutcomeSurvived},
		{"bad survived", OutcomeSurvived},
		{"skipped", OutcomeSkipped},
		{"untested", OutcomeSkipped},
		{"timeout", OutcomeTimeout},
		{"bad-timeout", OutcomeTimeout},
		{"suspicious", OutcomeSuspicious},
		{"ok suspicious", OutcomeSuspicious},
		{"incompetent", OutcomeError},
		{"error", OutcomeError},
		{"something else", OutcomeError},
		{"", OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutcome(tt.word))
		})
	}
}
