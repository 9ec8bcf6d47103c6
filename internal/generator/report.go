package generator

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/rexdocs/internal/metrics"
)

// Outcome is the final state of a run.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeWarning  Outcome = "warning"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// PageResult records one rendered page.
type PageResult struct {
	Name     string
	File     string // path written, relative to the output directory
	Entries  int
	Duration time.Duration
	Result   metrics.ResultLabel
}

// Report captures what a generation run did.
type Report struct {
	RunID          string
	Start          time.Time
	End            time.Time
	OutputDir      string
	Pages          []PageResult
	StageDurations map[StageName]time.Duration
	Missing        []string // configured sources that did not exist
	Errors         []error
	Outcome        Outcome
}

func newReport(runID, outputDir string) *Report {
	return &Report{
		RunID:          runID,
		Start:          time.Now(),
		OutputDir:      outputDir,
		StageDurations: make(map[StageName]time.Duration),
	}
}

// Entries is the number of token entries across all rendered pages.
func (r *Report) Entries() int {
	n := 0
	for _, p := range r.Pages {
		n += p.Entries
	}
	return n
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// deriveOutcome sets Outcome from the collected errors and missing sources.
// A canceled run keeps its outcome.
func (r *Report) deriveOutcome() {
	switch {
	case r.Outcome == OutcomeCanceled:
	case len(r.Errors) > 0:
		r.Outcome = OutcomeFailed
	case len(r.Missing) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

func (r *Report) finish(rec metrics.Recorder) {
	r.End = time.Now()
	r.deriveOutcome()
	rec.SetMissingSources(len(r.Missing))
	rec.ObserveRunDuration(r.Duration())
	rec.IncRunOutcome(string(r.Outcome))
}

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("pages=%d entries=%d missing=%d errors=%d duration=%s outcome=%s",
		len(r.Pages), r.Entries(), len(r.Missing), len(r.Errors), r.Duration().Truncate(time.Millisecond), r.Outcome)
}
