package machine

import "context"

// EventType is a unique name for a class of events the machine can receive.
type EventType string

// Payload carries the variable fields of a concrete event.
type Payload map[string]any

// Context holds the extended state of a machine.
type Context map[string]any

// Event is one concrete instantiation of an event type with a specific payload.
type Event struct {
	Type    EventType `json:"type" yaml:"type"`
	Payload Payload   `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// TestFunc asserts that the system under test matches an abstract state.
// It receives the caller-supplied SUT handle and the reached state.
type TestFunc func(ctx context.Context, sut any, state *State) error

// Meta is the per-state-node metadata attached to a reached state.
// Test, when set, is run by the test model when the state is asserted;
// Skip suppresses that run without being an error.
type Meta struct {
	Test        TestFunc
	Skip        bool
	Description string
}

// ActionFunc is a side-effecting handler attached to a machine action.
type ActionFunc func(mc Context, ev Event, meta ActionMeta) error

// ActionMeta is the third argument handed to an ActionFunc.
type ActionMeta struct {
	// Event is the event that produced the state the action belongs to.
	Event Event
	// Action is the action object being executed.
	Action Action
	// State is the state the action was emitted for.
	State *State
}

// Action is a side effect the machine emitted when entering a state.
// Actions without an Exec handler are declarative only and are skipped
// during execution.
type Action struct {
	Type string
	Exec ActionFunc
}

// GuardFunc decides whether a conditional transition may be taken.
type GuardFunc func(mc Context, ev Event) bool
