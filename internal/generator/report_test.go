package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/rexdocs/internal/metrics"
)

func TestDeriveOutcome(t *testing.T) {
	cases := []struct {
		name string
		r    Report
		want Outcome
	}{
		{"clean", Report{}, OutcomeSuccess},
		{"missing", Report{Missing: []string{"a.scss"}}, OutcomeWarning},
		{"errors win", Report{Missing: []string{"a"}, Errors: []error{errors.New("x")}}, OutcomeFailed},
		{"canceled sticks", Report{Outcome: OutcomeCanceled, Errors: []error{errors.New("x")}}, OutcomeCanceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.r.deriveOutcome()
			assert.Equal(t, tc.want, tc.r.Outcome)
		})
	}
}

func TestReportEntriesAndFinish(t *testing.T) {
	r := newReport("run", "docs")
	r.Pages = []PageResult{{Name: "a", Entries: 2}, {Name: "b", Entries: 3}}
	r.finish(metrics.NoopRecorder{})
	assert.Equal(t, 5, r.Entries())
	assert.False(t, r.End.Before(r.Start))
	assert.Contains(t, r.Summary(), "pages=2 entries=5")
}
