package testmodel

import (
	"context"
	"time"

	"github.com/zoyopo/xstate/pkg/machine"
)

// StateTestedEvent is emitted after a state's assertions have run.
type StateTestedEvent struct {
	State *machine.State
	// Key is the serialized form of the tested state.
	Key string
	// Err is the assertion failure, nil on success.
	Err error
	At  time.Time
}

// ActionsExecutedEvent is emitted after a state's actions have run.
type ActionsExecutedEvent struct {
	State *machine.State
	Key   string
	Err   error
	At    time.Time
}

// TransitionTestedEvent is emitted after a transition's execution handler
// has run (or been skipped for lack of one).
type TransitionTestedEvent struct {
	Step machine.Step
	// TargetKey is the serialized form of the state the step reached.
	TargetKey string
	Err       error
	At        time.Time
}

// Hooks defines callbacks for observing a model's behavior operations.
// Hooks observe outcomes only; returned errors still propagate unchanged
// to whatever invoked the behavior method.
type Hooks struct {
	OnStateTested      func(context.Context, *StateTestedEvent)
	OnActionsExecuted  func(context.Context, *ActionsExecutedEvent)
	OnTransitionTested func(context.Context, *TransitionTestedEvent)
}
