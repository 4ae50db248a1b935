package testmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoyopo/xstate/pkg/machine"
	"github.com/zoyopo/xstate/pkg/ports"
)

// SerializeFunc produces a deterministic key for a state.
type SerializeFunc func(state *machine.State) string

// GetEventsFunc enumerates the concrete events explorable from a state.
type GetEventsFunc func(state *machine.State) []machine.Event

// TestStateFunc asserts a reached state against the SUT.
type TestStateFunc func(ctx context.Context, sut any, state *machine.State) error

// ExecuteFunc runs the actions of a reached state.
type ExecuteFunc func(state *machine.State) error

// TestTransitionFunc exercises a transition step against the SUT.
type TestTransitionFunc func(ctx context.Context, sut any, step machine.Step) error

// Model is the behavior object handed to a traversal engine. It composes
// the event expander, the state assertion runner, the action executor and
// the transition executor over a machine evaluator into the uniform
// five-operation contract.
//
// A Model owns no mutable state beyond its configuration: it is built once
// per machine+options pair and may be reused, concurrently, across any
// number of independent traversal runs, provided the configured handlers
// are themselves reentrant.
type Model struct {
	eval   ports.StateEvaluator
	events EventsConfig
	logger *slog.Logger
	hooks  []Hooks

	serializeState SerializeFunc
	getEvents      GetEventsFunc
	testState      TestStateFunc
	execute        ExecuteFunc
	testTransition TestTransitionFunc
}

var _ ports.Behavior = (*Model)(nil)

// Option configures a Model during construction. Options are applied in
// the order given; a later option replacing the same operation wins.
type Option func(*Model)

// WithSerializer replaces the default state serializer (the evaluator's).
func WithSerializer(fn SerializeFunc) Option {
	return func(m *Model) { m.serializeState = fn }
}

// WithGetEvents replaces the default event enumeration.
func WithGetEvents(fn GetEventsFunc) Option {
	return func(m *Model) { m.getEvents = fn }
}

// WithTestState replaces the default state assertion runner.
func WithTestState(fn TestStateFunc) Option {
	return func(m *Model) { m.testState = fn }
}

// WithExecute replaces the default action executor.
func WithExecute(fn ExecuteFunc) Option {
	return func(m *Model) { m.execute = fn }
}

// WithTestTransition replaces the default transition executor.
func WithTestTransition(fn TestTransitionFunc) Option {
	return func(m *Model) { m.testTransition = fn }
}

// WithLogger sets the logger for behavior diagnostics. Defaults to a
// no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithHooks registers observability hooks. May be given multiple times;
// all registered hook sets fire, in registration order.
func WithHooks(hooks Hooks) Option {
	return func(m *Model) { m.hooks = append(m.hooks, hooks) }
}

// WithRecorder registers a run recorder as a hook set.
func WithRecorder(r *Recorder) Option {
	return WithHooks(r.hooks())
}

// New builds a Model over a machine evaluator and a per-event test
// configuration. The five operations default to the evaluator's
// serializer, case expansion over the state's next events, and the three
// component executors; any of them can be replaced through options.
func New(eval ports.StateEvaluator, events EventsConfig, opts ...Option) *Model {
	m := &Model{
		eval:   eval,
		events: events,
		logger: slog.New(slog.DiscardHandler),
	}

	m.serializeState = eval.SerializeState
	m.getEvents = m.defaultGetEvents
	m.testState = func(ctx context.Context, sut any, state *machine.State) error {
		return RunStateAssertions(ctx, sut, state)
	}
	m.execute = ExecuteActions
	m.testTransition = func(ctx context.Context, sut any, step machine.Step) error {
		return ExecuteTransition(ctx, sut, step, m.events)
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SerializeState returns the deterministic key of a state.
func (m *Model) SerializeState(state *machine.State) string {
	return m.serializeState(state)
}

// GetEvents returns the concrete events the traversal engine may fire
// from the given state: for each event type in the state's NextEvents, one
// event per configured case, or a single payload-free event when the type
// has no cases.
func (m *Model) GetEvents(state *machine.State) []machine.Event {
	return m.getEvents(state)
}

// TestState runs the state's applicable assertions against the SUT.
func (m *Model) TestState(ctx context.Context, sut any, state *machine.State) error {
	err := m.testState(ctx, sut, state)
	if err != nil {
		m.logger.Debug("state assertions failed", "state", state.Value, "err", err)
	}
	m.fireStateTested(ctx, state, err)
	return err
}

// Execute runs the state's actions.
func (m *Model) Execute(state *machine.State) error {
	err := m.execute(state)
	if err != nil {
		m.logger.Debug("action execution failed", "state", state.Value, "err", err)
	}
	m.fireActionsExecuted(state, err)
	return err
}

// TestTransition exercises a transition step against the SUT.
func (m *Model) TestTransition(ctx context.Context, sut any, step machine.Step) error {
	err := m.testTransition(ctx, sut, step)
	if err != nil {
		m.logger.Debug("transition execution failed", "event", step.Event.Type, "err", err)
	}
	m.fireTransitionTested(ctx, step, err)
	return err
}

func (m *Model) defaultGetEvents(state *machine.State) []machine.Event {
	events := make([]machine.Event, 0, len(state.NextEvents))
	for _, evType := range state.NextEvents {
		events = append(events, expandOne(evType, m.events[evType])...)
	}
	return events
}

func (m *Model) fireStateTested(ctx context.Context, state *machine.State, err error) {
	if !m.anyHook(func(h Hooks) bool { return h.OnStateTested != nil }) {
		return
	}
	ev := &StateTestedEvent{
		State: state,
		Key:   m.serializeState(state),
		Err:   err,
		At:    time.Now(),
	}
	for _, h := range m.hooks {
		if h.OnStateTested != nil {
			h.OnStateTested(ctx, ev)
		}
	}
}

func (m *Model) fireActionsExecuted(state *machine.State, err error) {
	if !m.anyHook(func(h Hooks) bool { return h.OnActionsExecuted != nil }) {
		return
	}
	ev := &ActionsExecutedEvent{
		State: state,
		Key:   m.serializeState(state),
		Err:   err,
		At:    time.Now(),
	}
	for _, h := range m.hooks {
		if h.OnActionsExecuted != nil {
			h.OnActionsExecuted(context.Background(), ev)
		}
	}
}

func (m *Model) fireTransitionTested(ctx context.Context, step machine.Step, err error) {
	if !m.anyHook(func(h Hooks) bool { return h.OnTransitionTested != nil }) {
		return
	}
	ev := &TransitionTestedEvent{
		Step:      step,
		TargetKey: m.serializeState(step.State),
		Err:       err,
		At:        time.Now(),
	}
	for _, h := range m.hooks {
		if h.OnTransitionTested != nil {
			h.OnTransitionTested(ctx, ev)
		}
	}
}

func (m *Model) anyHook(pred func(Hooks) bool) bool {
	for _, h := range m.hooks {
		if pred(h) {
			return true
		}
	}
	return false
}
