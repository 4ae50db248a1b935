package testmodel

import (
	"context"
	"fmt"
	"sort"

	"github.com/zoyopo/xstate/pkg/machine"
)

// RunStateAssertions runs every applicable test assertion attached to the
// state's metadata against the SUT. Meta entries are visited in sorted key
// order; entries without a test handler and entries flagged Skip are
// silently ignored. Assertions run strictly one at a time, and the first
// failure aborts the call: remaining entries are not run and the error is
// returned wrapped with the failing meta identifier.
func RunStateAssertions(ctx context.Context, sut any, state *machine.State) error {
	keys := make([]string, 0, len(state.Meta))
	for key := range state.Meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		meta := state.Meta[key]
		if meta.Test == nil || meta.Skip {
			continue
		}
		if err := meta.Test(ctx, sut, state); err != nil {
			return fmt.Errorf("state %q: assertion %q failed: %w", state.Value, key, err)
		}
	}
	return nil
}
