package production

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/comalice/smf"
)

const namespace = "smf"

// Metrics counts engine events per machine.
type Metrics struct {
	entries      *prometheus.CounterVec
	exits        *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	terminations *prometheus.CounterVec
	misuse       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. Collectors
// already registered by an earlier call are reused, so several Metrics can
// share one registry. On error the collectors registered by this call are
// removed again.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_entries_total",
			Help:      "Entry actions invoked, by state.",
		}, []string{"machine", "state"}),
		exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_exits_total",
			Help:      "Exit actions invoked, by state.",
		}, []string{"machine", "state"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Committed transitions, by source and target leaf.",
		}, []string{"machine", "from", "to"}),
		terminations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terminations_total",
			Help:      "Termination requests.",
		}, []string{"machine"}),
		misuse: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misuse_total",
			Help:      "Ignored engine calls, such as SetState from an exit action.",
		}, []string{"machine"}),
	}

	var registered []prometheus.Collector
	for _, c := range []**prometheus.CounterVec{&m.entries, &m.exits, &m.transitions, &m.terminations, &m.misuse} {
		err := reg.Register(*c)
		if err == nil {
			registered = append(registered, *c)
			continue
		}
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				*c = existing
				continue
			}
		}
		for _, r := range registered {
			reg.Unregister(r)
		}
		return nil, err
	}
	return m, nil
}

// Hooks returns hooks that count events under the given machine label.
func (m *Metrics) Hooks(machine string) smf.Hooks {
	labels := prometheus.Labels{"machine": machine}
	entries := m.entries.MustCurryWith(labels)
	exits := m.exits.MustCurryWith(labels)
	transitions := m.transitions.MustCurryWith(labels)
	terminations := m.terminations.With(labels)
	misuse := m.misuse.With(labels)

	return smf.Hooks{
		OnEntry:      func(s string) { entries.WithLabelValues(s).Inc() },
		OnExit:       func(s string) { exits.WithLabelValues(s).Inc() },
		OnTransition: func(from, to string) { transitions.WithLabelValues(from, to).Inc() },
		OnTerminate:  func(int32) { terminations.Inc() },
		OnMisuse:     func(error) { misuse.Inc() },
	}
}
