package production_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/smf"
	"github.com/comalice/smf/production"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := production.NewMetrics(reg)
	require.NoError(t, err)

	drive(t, smf.WithHooks(m.Hooks("chart")))

	expected := `
# HELP smf_transitions_total Committed transitions, by source and target leaf.
# TYPE smf_transitions_total counter
smf_transitions_total{from="a1",machine="chart",to="b2"} 1
# HELP smf_terminations_total Termination requests.
# TYPE smf_terminations_total counter
smf_terminations_total{machine="chart"} 1
# HELP smf_misuse_total Ignored engine calls, such as SetState from an exit action.
# TYPE smf_misuse_total counter
smf_misuse_total{machine="chart"} 1
`
	require.NoError(t, promtest.GatherAndCompare(reg, strings.NewReader(expected),
		"smf_transitions_total", "smf_terminations_total", "smf_misuse_total"))

	// root, a, a1, b, b2
	assertSeries(t, reg, "smf_state_entries_total", 5)
	assertSeries(t, reg, "smf_state_exits_total", 2)
}

func TestMetricsShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := production.NewMetrics(reg)
	require.NoError(t, err)
	second, err := production.NewMetrics(reg)
	require.NoError(t, err)

	drive(t, smf.WithHooks(first.Hooks("one")))
	drive(t, smf.WithHooks(second.Hooks("two")))

	assertSeries(t, reg, "smf_terminations_total", 2)
	assertSeries(t, reg, "smf_state_entries_total", 10)
}

func TestMetricsRegisterConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "smf_transitions_total",
		Help: "Something else.",
	})))

	_, err := production.NewMetrics(reg)
	require.Error(t, err)

	entries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smf",
		Name:      "state_entries_total",
		Help:      "Entry actions invoked, by state.",
	}, []string{"machine", "state"})
	assert.NoError(t, reg.Register(entries), "entries collector left behind")
}

func assertSeries(t *testing.T, reg *prometheus.Registry, name string, want int) {
	t.Helper()
	n, err := promtest.GatherAndCount(reg, name)
	require.NoError(t, err)
	assert.Equal(t, want, n, name)
}
