package ports

import (
	"context"

	"github.com/zoyopo/xstate/pkg/machine"
)

// Behavior is the uniform contract a traversal engine drives a test model
// through. It is the entire boundary between plan generation and this
// module: the engine asks which events are explorable from a state, fires
// them through its own evaluator, and hands every reached state and taken
// step back for verification and execution.
//
// Implementations must be stateless so a single behavior can back several
// concurrently running traversal sessions.
type Behavior interface {
	// SerializeState returns a deterministic key for a state, used by
	// the traversal engine for visited-state deduplication.
	SerializeState(state *machine.State) string

	// GetEvents returns the concrete events the traversal engine may
	// fire from the given state, one per configured case (or a single
	// payload-free event when no cases are configured).
	GetEvents(state *machine.State) []machine.Event

	// TestState runs every applicable assertion attached to the state's
	// metadata against the SUT. The first failing assertion aborts the
	// call and its error is returned.
	TestState(ctx context.Context, sut any, state *machine.State) error

	// Execute invokes the side-effecting handlers of the actions the
	// machine emitted when entering the state.
	Execute(state *machine.State) error

	// TestTransition invokes the execution handler configured for the
	// step's event type against the SUT. A step without a configured
	// handler is a no-op.
	TestTransition(ctx context.Context, sut any, step machine.Step) error
}

// StateEvaluator is the machine-evaluation collaborator consumed by the
// test model. pkg/machine provides the canonical implementation.
type StateEvaluator interface {
	// InitialState returns the machine's entry state.
	InitialState() *machine.State

	// Transition evaluates one event against a state without mutating
	// either, returning the resulting state.
	Transition(state *machine.State, ev machine.Event) (*machine.State, error)

	// SerializeState returns a deterministic key for a state.
	SerializeState(state *machine.State) string
}
