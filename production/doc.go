// Package production hooks an smf machine into the tooling it needs once it
// leaves the test bench: a call-trace recorder that dumps to YAML or JSON,
// Prometheus counters, and a Graphviz exporter for state trees.
//
// Recorder and Metrics both plug into the engine through smf.Hooks:
//
//	rec := production.NewRecorder("door")
//	m, _ := production.NewMetrics(prometheus.DefaultRegisterer)
//	smf.Init(d, closed, smf.WithHooks(rec.Hooks()), smf.WithHooks(m.Hooks("door")))
package production
