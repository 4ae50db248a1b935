package testmodel

import (
	"context"
	"fmt"

	"github.com/zoyopo/xstate/pkg/machine"
)

// ExecuteTransition invokes the execution handler configured for the
// step's event type against the SUT and waits for it to complete. A step
// whose event type has no configuration, or a configuration without an
// Exec handler, is a no-op: the transition is traversed abstractly but not
// exercised against the SUT.
func ExecuteTransition(ctx context.Context, sut any, step machine.Step, events EventsConfig) error {
	config, ok := events[step.Event.Type]
	if !ok || config.Exec == nil {
		return nil
	}
	if err := config.Exec(ctx, sut, step); err != nil {
		return fmt.Errorf("transition %q failed: %w", step.Event.Type, err)
	}
	return nil
}
