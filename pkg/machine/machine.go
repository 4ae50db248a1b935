package machine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ErrNoTransition is returned when the machine has no enabled transition
// for the given state and event.
var ErrNoTransition = errors.New("no transition")

// Machine evaluates a MachineConfig. It holds no mutable run state: every
// evaluation is a pure function of the state and event passed in, so a
// single Machine is safe to share.
type Machine struct {
	config  MachineConfig
	guards  map[string]GuardFunc
	actions map[string]ActionFunc
	tests   map[string]TestFunc
	logger  *slog.Logger
}

// Option configures a Machine during construction.
type Option func(*Machine)

// WithGuards registers guard functions referenced by name from
// TransitionConfig.Cond.
func WithGuards(guards map[string]GuardFunc) Option {
	return func(m *Machine) {
		for name, fn := range guards {
			m.guards[name] = fn
		}
	}
}

// WithActions registers action handlers referenced by name from
// StateNode.Entry.
func WithActions(actions map[string]ActionFunc) Option {
	return func(m *Machine) {
		for name, fn := range actions {
			m.actions[name] = fn
		}
	}
}

// WithTests registers state assertion handlers keyed by state-node id.
// They surface on State.Meta and are run by the test model.
func WithTests(tests map[string]TestFunc) Option {
	return func(m *Machine) {
		for id, fn := range tests {
			m.tests[id] = fn
		}
	}
}

// WithLogger sets the logger used for evaluation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New validates the configuration and builds a Machine. Guards named by a
// Cond must be registered; entry action names without a registered handler
// are allowed and produce declarative-only actions.
func New(config MachineConfig, opts ...Option) (*Machine, error) {
	m := &Machine{
		config:  config,
		guards:  make(map[string]GuardFunc),
		actions: make(map[string]ActionFunc),
		tests:   make(map[string]TestFunc),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine config: %w", err)
	}
	for id, node := range config.States {
		for ev, t := range node.On {
			if t.Cond == "" {
				continue
			}
			if _, ok := m.guards[t.Cond]; !ok {
				return nil, fmt.Errorf("state %q: transition on %q references unregistered guard %q", id, ev, t.Cond)
			}
		}
	}
	for id := range m.tests {
		if _, ok := config.States[id]; !ok {
			return nil, fmt.Errorf("test registered for undefined state %q", id)
		}
	}
	return m, nil
}

// ID returns the machine's configured identifier.
func (m *Machine) ID() string {
	return m.config.ID
}

// Config returns the machine's configuration.
func (m *Machine) Config() MachineConfig {
	return m.config
}

// InitialState evaluates the machine's entry into its initial node.
func (m *Machine) InitialState() *State {
	return m.stateFor(m.config.Initial, m.config.Context, Event{Type: InitEvent})
}

// Transition evaluates a single event against a state and returns the
// resulting state. The input state is not mutated. If the state has no
// enabled transition for the event's type, ErrNoTransition is returned.
func (m *Machine) Transition(state *State, ev Event) (*State, error) {
	node, ok := m.config.States[state.Value]
	if !ok {
		return nil, fmt.Errorf("state %q not defined in machine %q", state.Value, m.config.ID)
	}

	t, ok := node.On[ev.Type]
	if !ok {
		return nil, fmt.Errorf("state %q on event %q: %w", state.Value, ev.Type, ErrNoTransition)
	}
	if t.Cond != "" && !m.guards[t.Cond](state.Context, ev) {
		m.logger.Debug("guard rejected transition",
			"state", state.Value, "event", ev.Type, "cond", t.Cond)
		return nil, fmt.Errorf("state %q on event %q: guard %q rejected: %w", state.Value, ev.Type, t.Cond, ErrNoTransition)
	}

	m.logger.Debug("transition", "from", state.Value, "event", ev.Type, "to", t.Target)
	return m.stateFor(t.Target, state.Context, ev), nil
}

// SerializeState returns a deterministic key for a state, suitable for
// visited-state deduplication: the active node id plus the context encoded
// as canonical JSON (encoding/json sorts map keys).
func (m *Machine) SerializeState(state *State) string {
	var sb strings.Builder
	sb.WriteString(state.Value)
	if len(state.Context) > 0 {
		data, err := json.Marshal(state.Context)
		if err != nil {
			// Context values are plain config/JSON values; an
			// unmarshalable one is a programming error.
			panic(fmt.Sprintf("serialize state %q: %v", state.Value, err))
		}
		sb.WriteString(" ")
		sb.Write(data)
	}
	return sb.String()
}

func (m *Machine) stateFor(value string, mc Context, ev Event) *State {
	node := m.config.States[value]

	state := &State{
		Value:   value,
		Context: mc,
		Event:   ev,
	}

	state.Meta = make(map[string]Meta)
	if node.Meta != nil || m.tests[value] != nil {
		meta := Meta{Test: m.tests[value]}
		if node.Meta != nil {
			meta.Skip = node.Meta.Skip
			meta.Description = node.Meta.Description
		}
		state.Meta[value] = meta
	}

	for _, name := range node.Entry {
		state.Actions = append(state.Actions, Action{Type: name, Exec: m.actions[name]})
	}

	for evType := range node.On {
		state.NextEvents = append(state.NextEvents, evType)
	}
	sort.Slice(state.NextEvents, func(i, j int) bool {
		return state.NextEvents[i] < state.NextEvents[j]
	})

	return state
}
