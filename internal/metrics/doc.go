// Package metrics provides observability hooks for documentation generation runs.
//
// Components receive a Recorder and default to NoopRecorder, so nothing needs a
// nil check:
//
//	gen := generator.New(cfg, generator.WithRecorder(metrics.NoopRecorder{}))
//
// When metrics.textfile is configured the CLI swaps in a PrometheusRecorder and
// writes the registry to disk after the run for node-exporter's textfile collector:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	gen := generator.New(cfg, generator.WithRecorder(rec))
//	...
//	err := rec.WriteTextfile(cfg.Metrics.Textfile)
package metrics
