package testmodel

import (
	"context"
	"sync"
	"time"

	"github.com/zoyopo/xstate/pkg/ports"
)

// Recorder accumulates a run record from model hooks. It is owned by the
// caller of a traversal run, not by the model: the model itself stays
// stateless, and one Recorder tracks exactly one run.
//
// Safe for concurrent hook invocations.
type Recorder struct {
	store ports.RunStore

	mu     sync.Mutex
	record ports.RunRecord
}

// NewRecorder creates a recorder for one traversal run.
func NewRecorder(runID, machineID string, store ports.RunStore) *Recorder {
	return &Recorder{
		store: store,
		record: ports.RunRecord{
			ID:        runID,
			MachineID: machineID,
			StartedAt: time.Now().UTC(),
		},
	}
}

// Record returns a snapshot of the accumulated run record.
func (r *Recorder) Record() ports.RunRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.record
	snapshot.States = append([]ports.StateVisit(nil), r.record.States...)
	snapshot.Transitions = append([]ports.TransitionRecord(nil), r.record.Transitions...)
	return snapshot
}

// Flush persists the accumulated record to the configured store.
func (r *Recorder) Flush(ctx context.Context) error {
	snapshot := r.Record()
	return r.store.Save(ctx, &snapshot)
}

func (r *Recorder) hooks() Hooks {
	return Hooks{
		OnStateTested:      r.onStateTested,
		OnTransitionTested: r.onTransitionTested,
	}
}

func (r *Recorder) onStateTested(_ context.Context, ev *StateTestedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record.States = append(r.record.States, ports.StateVisit{
		Key:    ev.Key,
		Value:  ev.State.Value,
		At:     ev.At,
		Failed: ev.Err != nil,
	})
}

func (r *Recorder) onTransitionTested(_ context.Context, ev *TransitionTestedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record.Transitions = append(r.record.Transitions, ports.TransitionRecord{
		EventType: ev.Step.Event.Type,
		Payload:   ev.Step.Event.Payload,
		TargetKey: ev.TargetKey,
		At:        ev.At,
		Failed:    ev.Err != nil,
	})
}
