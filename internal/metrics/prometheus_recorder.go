package metrics

import (
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
)

const namespace = "rexdocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	pageDuration   *prom.HistogramVec
	pageResults    *prom.CounterVec
	pageEntries    *prom.GaugeVec
	runDuration    prom.Histogram
	runOutcome     *prom.CounterVec
	missingSources prom.Gauge
}

// NewPrometheusRecorder constructs and registers the generator metrics on reg.
// A nil registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		pageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Duration of rendering and writing a single page",
			Buckets:   prom.DefBuckets,
		}, []string{"page"}),
		pageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_results_total",
			Help:      "Page render results by outcome",
		}, []string{"page", "result"}),
		pageEntries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "page_entries",
			Help:      "Number of token entries rendered on a page",
		}, []string{"page"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Generation runs by final status",
		}, []string{"outcome"}),
		missingSources: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "missing_sources",
			Help:      "Configured SCSS sources that were absent in the last run",
		}),
	}
	reg.MustRegister(pr.pageDuration, pr.pageResults, pr.pageEntries, pr.runDuration, pr.runOutcome, pr.missingSources)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObservePageDuration(page string, d time.Duration) {
	if p == nil {
		return
	}
	p.pageDuration.WithLabelValues(page).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageResult(page string, result ResultLabel) {
	if p == nil {
		return
	}
	p.pageResults.WithLabelValues(page, string(result)).Inc()
}

func (p *PrometheusRecorder) SetPageEntries(page string, n int) {
	if p == nil {
		return
	}
	p.pageEntries.WithLabelValues(page).Set(float64(n))
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) SetMissingSources(n int) {
	if p == nil {
		return
	}
	p.missingSources.Set(float64(n))
}

// WriteTextfile writes the registry in text exposition format for the node-exporter
// textfile collector. The write is atomic.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil || path == "" {
		return nil
	}
	if err := prom.WriteToTextfile(filepath.Clean(path), p.reg); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
			WithContext("path", path).
			Build()
	}
	return nil
}
