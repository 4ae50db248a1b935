package testmodel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoyopo/xstate/pkg/adapters/memory"
	"github.com/zoyopo/xstate/pkg/machine"
	"github.com/zoyopo/xstate/pkg/testmodel"
)

func toggleMachine(t *testing.T, opts ...machine.Option) *machine.Machine {
	t.Helper()
	m, err := machine.New(machine.MachineConfig{
		ID:      "toggle",
		Initial: "inactive",
		States: map[string]machine.StateNode{
			"inactive": {
				On: map[machine.EventType]machine.TransitionConfig{
					"TOGGLE": {Target: "active"},
				},
			},
			"active": {
				On: map[machine.EventType]machine.TransitionConfig{
					"TOGGLE": {Target: "inactive"},
				},
			},
		},
	}, opts...)
	require.NoError(t, err)
	return m
}

func TestModel_GetEvents_CasesScenario(t *testing.T) {
	m := toggleMachine(t)
	model := testmodel.New(m, testmodel.EventsConfig{
		"TOGGLE": testmodel.WithCases(func() []machine.Payload {
			return []machine.Payload{{}, {"value": true}}
		}),
	})

	events := model.GetEvents(m.InitialState())

	require.Len(t, events, 2)
	assert.Equal(t, machine.Event{Type: "TOGGLE", Payload: machine.Payload{}}, events[0])
	assert.Equal(t, machine.Event{Type: "TOGGLE", Payload: machine.Payload{"value": true}}, events[1])
}

func TestModel_GetEvents_NoCasesMeansPlainEvent(t *testing.T) {
	m := toggleMachine(t)
	model := testmodel.New(m, testmodel.EventsConfig{})

	events := model.GetEvents(m.InitialState())

	require.Len(t, events, 1)
	assert.Equal(t, machine.Event{Type: "TOGGLE"}, events[0])
}

func TestModel_GetEvents_SumAcrossNextEvents(t *testing.T) {
	model := testmodel.New(toggleMachine(t), testmodel.EventsConfig{
		"A": testmodel.WithCases(func() []machine.Payload {
			return []machine.Payload{{"n": 1}, {"n": 2}, {"n": 3}}
		}),
		"C": testmodel.WithCases(func() []machine.Payload {
			return []machine.Payload{{"x": "y"}}
		}),
	})

	// GetEvents only reads NextEvents, so a hand-built state keeps the
	// sum property visible: 3 cases + 1 default + 1 case.
	state := &machine.State{Value: "s", NextEvents: []machine.EventType{"A", "B", "C"}}
	events := model.GetEvents(state)

	require.Len(t, events, 5)
	types := make([]machine.EventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	assert.Equal(t, []machine.EventType{"A", "A", "A", "B", "C"}, types,
		"order follows NextEvents iteration order, then case order")
}

func TestModel_SerializeState_DelegatesToEvaluator(t *testing.T) {
	m := toggleMachine(t)
	model := testmodel.New(m, testmodel.EventsConfig{})

	state := m.InitialState()
	assert.Equal(t, m.SerializeState(state), model.SerializeState(state))
}

func TestModel_DefaultBindings(t *testing.T) {
	var tested, executed int
	m := toggleMachine(t, machine.WithTests(map[string]machine.TestFunc{
		"inactive": func(ctx context.Context, sut any, state *machine.State) error {
			tested++
			return nil
		},
	}))

	model := testmodel.New(m, testmodel.EventsConfig{
		"TOGGLE": testmodel.ExecOnly(func(ctx context.Context, sut any, step machine.Step) error {
			executed++
			return nil
		}),
	})

	ctx := context.Background()
	state := m.InitialState()
	require.NoError(t, model.TestState(ctx, nil, state))
	assert.Equal(t, 1, tested)

	require.NoError(t, model.Execute(state))

	next, err := m.Transition(state, machine.Event{Type: "TOGGLE"})
	require.NoError(t, err)
	require.NoError(t, model.TestTransition(ctx, nil, machine.Step{Event: next.Event, State: next}))
	assert.Equal(t, 1, executed)
}

func TestModel_OptionsOverride(t *testing.T) {
	m := toggleMachine(t)

	var firstCalls, secondCalls int
	model := testmodel.New(m, testmodel.EventsConfig{},
		testmodel.WithTestState(func(ctx context.Context, sut any, state *machine.State) error {
			firstCalls++
			return nil
		}),
		testmodel.WithTestState(func(ctx context.Context, sut any, state *machine.State) error {
			secondCalls++
			return nil
		}),
		testmodel.WithSerializer(func(state *machine.State) string {
			return "custom:" + state.Value
		}),
	)

	require.NoError(t, model.TestState(context.Background(), nil, m.InitialState()))
	assert.Zero(t, firstCalls, "the later option must win")
	assert.Equal(t, 1, secondCalls)
	assert.Equal(t, "custom:inactive", model.SerializeState(m.InitialState()))
}

func TestModel_HooksObserveOutcomes(t *testing.T) {
	boom := errors.New("boom")
	m := toggleMachine(t, machine.WithTests(map[string]machine.TestFunc{
		"inactive": func(ctx context.Context, sut any, state *machine.State) error {
			return boom
		},
	}))

	var stateEvents []*testmodel.StateTestedEvent
	var transitionEvents []*testmodel.TransitionTestedEvent
	model := testmodel.New(m, testmodel.EventsConfig{}, testmodel.WithHooks(testmodel.Hooks{
		OnStateTested: func(_ context.Context, ev *testmodel.StateTestedEvent) {
			stateEvents = append(stateEvents, ev)
		},
		OnTransitionTested: func(_ context.Context, ev *testmodel.TransitionTestedEvent) {
			transitionEvents = append(transitionEvents, ev)
		},
	}))

	ctx := context.Background()
	state := m.InitialState()

	err := model.TestState(ctx, nil, state)
	require.Error(t, err, "hooks observe, they do not swallow")
	require.Len(t, stateEvents, 1)
	assert.Equal(t, "inactive", stateEvents[0].Key)
	assert.ErrorIs(t, stateEvents[0].Err, boom)

	next, err := m.Transition(state, machine.Event{Type: "TOGGLE"})
	require.NoError(t, err)
	require.NoError(t, model.TestTransition(ctx, nil, machine.Step{Event: next.Event, State: next}))
	require.Len(t, transitionEvents, 1)
	assert.Equal(t, machine.EventType("TOGGLE"), transitionEvents[0].Step.Event.Type)
	assert.NoError(t, transitionEvents[0].Err)
}

func TestModel_RecorderAccumulatesRun(t *testing.T) {
	m := toggleMachine(t, machine.WithTests(map[string]machine.TestFunc{
		"active": func(ctx context.Context, sut any, state *machine.State) error { return nil },
	}))

	store := memory.NewStore()
	recorder := testmodel.NewRecorder("run-1", m.ID(), store)
	model := testmodel.New(m, testmodel.EventsConfig{}, testmodel.WithRecorder(recorder))

	ctx := context.Background()
	state := m.InitialState()
	require.NoError(t, model.TestState(ctx, nil, state))

	next, err := m.Transition(state, machine.Event{Type: "TOGGLE"})
	require.NoError(t, err)
	require.NoError(t, model.TestTransition(ctx, nil, machine.Step{Event: next.Event, State: next}))
	require.NoError(t, model.TestState(ctx, nil, next))

	record := recorder.Record()
	assert.Equal(t, "run-1", record.ID)
	assert.Equal(t, "toggle", record.MachineID)
	require.Len(t, record.States, 2)
	assert.Equal(t, "inactive", record.States[0].Value)
	assert.Equal(t, "active", record.States[1].Value)
	require.Len(t, record.Transitions, 1)
	assert.Equal(t, machine.EventType("TOGGLE"), record.Transitions[0].EventType)
	assert.False(t, record.Transitions[0].Failed)

	require.NoError(t, recorder.Flush(ctx))
	loaded, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, loaded.States, 2)
}
