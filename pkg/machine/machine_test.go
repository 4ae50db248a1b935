package machine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoyopo/xstate/pkg/machine"
)

func toggleConfig() machine.MachineConfig {
	return machine.MachineConfig{
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
					"RESET":  {Target: "inactive"},
				},
				Meta: &machine.MetaConfig{Description: "widget is on"},
			},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		_, err := machine.New(toggleConfig())
		require.NoError(t, err)
	})

	t.Run("missing initial", func(t *testing.T) {
		config := toggleConfig()
		config.Initial = ""
		_, err := machine.New(config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no initial state")
	})

	t.Run("undefined initial", func(t *testing.T) {
		config := toggleConfig()
		config.Initial = "missing"
		_, err := machine.New(config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `initial state "missing" not defined`)
	})

	t.Run("dangling target", func(t *testing.T) {
		config := toggleConfig()
		config.States["inactive"] = machine.StateNode{
			On: map[machine.EventType]machine.TransitionConfig{
				"TOGGLE": {Target: "nowhere"},
			},
		}
		_, err := machine.New(config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `undefined state "nowhere"`)
	})

	t.Run("unregistered guard", func(t *testing.T) {
		config := toggleConfig()
		config.States["inactive"] = machine.StateNode{
			On: map[machine.EventType]machine.TransitionConfig{
				"TOGGLE": {Target: "active", Cond: "isReady"},
			},
		}
		_, err := machine.New(config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unregistered guard "isReady"`)
	})

	t.Run("test for undefined state", func(t *testing.T) {
		_, err := machine.New(toggleConfig(), machine.WithTests(map[string]machine.TestFunc{
			"missing": func(ctx context.Context, sut any, state *machine.State) error { return nil },
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `undefined state "missing"`)
	})
}

func TestMachine_InitialState(t *testing.T) {
	m, err := machine.New(toggleConfig())
	require.NoError(t, err)

	state := m.InitialState()
	assert.Equal(t, "inactive", state.Value)
	assert.True(t, state.Matches("inactive"))
	assert.Equal(t, machine.InitEvent, state.Event.Type)
	assert.Equal(t, []machine.EventType{"TOGGLE"}, state.NextEvents)
}

func TestMachine_Transition(t *testing.T) {
	m, err := machine.New(toggleConfig())
	require.NoError(t, err)

	t.Run("follows target", func(t *testing.T) {
		next, err := m.Transition(m.InitialState(), machine.Event{Type: "TOGGLE"})
		require.NoError(t, err)
		assert.Equal(t, "active", next.Value)
		assert.Equal(t, machine.EventType("TOGGLE"), next.Event.Type)
		// NextEvents sorted lexicographically.
		assert.Equal(t, []machine.EventType{"RESET", "TOGGLE"}, next.NextEvents)
	})

	t.Run("meta surfaces on reached state", func(t *testing.T) {
		next, err := m.Transition(m.InitialState(), machine.Event{Type: "TOGGLE"})
		require.NoError(t, err)
		meta, ok := next.Meta["active"]
		require.True(t, ok)
		assert.Equal(t, "widget is on", meta.Description)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := m.Transition(m.InitialState(), machine.Event{Type: "NOPE"})
		assert.ErrorIs(t, err, machine.ErrNoTransition)
	})

	t.Run("input state untouched", func(t *testing.T) {
		state := m.InitialState()
		_, err := m.Transition(state, machine.Event{Type: "TOGGLE"})
		require.NoError(t, err)
		assert.Equal(t, "inactive", state.Value)
		assert.Equal(t, machine.InitEvent, state.Event.Type)
	})
}

func TestMachine_Guards(t *testing.T) {
	config := toggleConfig()
	config.Context = machine.Context{"armed": false}
	config.States["inactive"] = machine.StateNode{
		On: map[machine.EventType]machine.TransitionConfig{
			"TOGGLE": {Target: "active", Cond: "isArmed"},
		},
	}

	m, err := machine.New(config, machine.WithGuards(map[string]machine.GuardFunc{
		"isArmed": func(mc machine.Context, ev machine.Event) bool {
			armed, _ := mc["armed"].(bool)
			return armed
		},
	}))
	require.NoError(t, err)

	_, err = m.Transition(m.InitialState(), machine.Event{Type: "TOGGLE"})
	assert.ErrorIs(t, err, machine.ErrNoTransition, "guard should reject while unarmed")
}

func TestMachine_EntryActions(t *testing.T) {
	config := toggleConfig()
	node := config.States["active"]
	node.Entry = []string{"notify", "unregistered"}
	config.States["active"] = node

	m, err := machine.New(config, machine.WithActions(map[string]machine.ActionFunc{
		"notify": func(mc machine.Context, ev machine.Event, meta machine.ActionMeta) error { return nil },
	}))
	require.NoError(t, err)

	next, err := m.Transition(m.InitialState(), machine.Event{Type: "TOGGLE"})
	require.NoError(t, err)

	require.Len(t, next.Actions, 2)
	assert.Equal(t, "notify", next.Actions[0].Type)
	assert.NotNil(t, next.Actions[0].Exec)
	assert.Equal(t, "unregistered", next.Actions[1].Type)
	assert.Nil(t, next.Actions[1].Exec, "unregistered entry action stays declarative")
}

func TestMachine_SerializeState(t *testing.T) {
	config := toggleConfig()
	config.Context = machine.Context{"b": 2, "a": 1}
	m, err := machine.New(config)
	require.NoError(t, err)

	state := m.InitialState()
	key := m.SerializeState(state)
	assert.Equal(t, `inactive {"a":1,"b":2}`, key, "context keys must serialize sorted")
	assert.Equal(t, key, m.SerializeState(state), "serialization must be deterministic")

	t.Run("no context", func(t *testing.T) {
		plain, err := machine.New(toggleConfig())
		require.NoError(t, err)
		assert.Equal(t, "inactive", plain.SerializeState(plain.InitialState()))
	})
}
