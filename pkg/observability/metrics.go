package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zoyopo/xstate/pkg/testmodel"
)

// Metrics exposes model activity as Prometheus collectors.
type Metrics struct {
	statesTested        *prometheus.CounterVec
	transitionsExecuted *prometheus.CounterVec
	assertionFailures   *prometheus.CounterVec
	actionFailures      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with the given
// registerer (use prometheus.DefaultRegisterer for the default registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		statesTested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xstate_states_tested_total",
				Help: "Total number of states whose assertions were run",
			},
			[]string{"state"},
		),
		transitionsExecuted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xstate_transitions_executed_total",
				Help: "Total number of transition steps executed against the SUT",
			},
			[]string{"event_type"},
		),
		assertionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xstate_assertion_failures_total",
				Help: "Total number of failed state assertion runs",
			},
			[]string{"state"},
		),
		actionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xstate_action_failures_total",
				Help: "Total number of failed action executions",
			},
			[]string{"state"},
		),
	}
	reg.MustRegister(m.statesTested, m.transitionsExecuted, m.assertionFailures, m.actionFailures)
	return m
}

// Hooks returns the hook set wiring the collectors into a model; pass it
// to testmodel.WithHooks.
func (m *Metrics) Hooks() testmodel.Hooks {
	return testmodel.Hooks{
		OnStateTested: func(_ context.Context, ev *testmodel.StateTestedEvent) {
			m.statesTested.WithLabelValues(ev.State.Value).Inc()
			if ev.Err != nil {
				m.assertionFailures.WithLabelValues(ev.State.Value).Inc()
			}
		},
		OnActionsExecuted: func(_ context.Context, ev *testmodel.ActionsExecutedEvent) {
			if ev.Err != nil {
				m.actionFailures.WithLabelValues(ev.State.Value).Inc()
			}
		},
		OnTransitionTested: func(_ context.Context, ev *testmodel.TransitionTestedEvent) {
			m.transitionsExecuted.WithLabelValues(string(ev.Step.Event.Type)).Inc()
		},
	}
}
