package metrics

import "time"

// ResultLabel enumerates page result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for page and run metrics.
type Recorder interface {
	ObservePageDuration(page string, d time.Duration)
	IncPageResult(page string, result ResultLabel)
	SetPageEntries(page string, n int)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome string) // outcome: success|warning|failed|canceled
	SetMissingSources(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePageDuration(string, time.Duration) {}
func (NoopRecorder) IncPageResult(string, ResultLabel)         {}
func (NoopRecorder) SetPageEntries(string, int)                {}
func (NoopRecorder) ObserveRunDuration(time.Duration)          {}
func (NoopRecorder) IncRunOutcome(string)                      {}
func (NoopRecorder) SetMissingSources(int)                     {}
