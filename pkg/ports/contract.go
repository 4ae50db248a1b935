package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoyopo/xstate/pkg/machine"
)

// RunRunStoreContract runs a suite of tests verifying that a RunStore
// implementation adheres to the interface contract.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		record := &RunRecord{
			ID:        runID,
			MachineID: "toggle",
			StartedAt: time.Now().UTC().Truncate(time.Second),
			States: []StateVisit{
				{Key: "inactive", Value: "inactive", At: time.Now().UTC().Truncate(time.Second)},
			},
			Transitions: []TransitionRecord{
				{EventType: "TOGGLE", TargetKey: "active", At: time.Now().UTC().Truncate(time.Second)},
			},
		}

		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.MachineID, loaded.MachineID)
		require.Len(t, loaded.States, 1)
		assert.Equal(t, "inactive", loaded.States[0].Key)
		require.Len(t, loaded.Transitions, 1)
		assert.Equal(t, machine.EventType("TOGGLE"), loaded.Transitions[0].EventType)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		record := &RunRecord{ID: runID, MachineID: "toggle"}
		record.States = append(record.States, StateVisit{Key: "active", Value: "active"})
		require.NoError(t, store.Save(ctx, record))

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		require.Len(t, loaded.States, 1)
		assert.Equal(t, "active", loaded.States[0].Key)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &RunRecord{ID: runID, MachineID: "toggle"}))

		err := store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, &RunRecord{ID: id1, MachineID: "toggle"})
		_ = store.Save(ctx, &RunRecord{ID: id2, MachineID: "toggle"})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
