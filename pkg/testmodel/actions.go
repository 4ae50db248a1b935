package testmodel

import (
	"fmt"

	"github.com/zoyopo/xstate/pkg/machine"
)

// ExecuteActions invokes the handlers of the actions the machine emitted
// when entering the state, in array order. Actions without an Exec handler
// are skipped; there is no skip flag for actions. The first failing
// handler aborts the remaining actions and its error is returned wrapped
// with the action type.
func ExecuteActions(state *machine.State) error {
	for _, action := range state.Actions {
		if action.Exec == nil {
			continue
		}
		meta := machine.ActionMeta{
			Event:  state.Event,
			Action: action,
			State:  state,
		}
		if err := action.Exec(state.Context, state.Event, meta); err != nil {
			return fmt.Errorf("state %q: action %q failed: %w", state.Value, action.Type, err)
		}
	}
	return nil
}
