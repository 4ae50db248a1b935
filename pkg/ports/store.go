package ports

import (
	"context"
	"errors"
	"time"

	"github.com/zoyopo/xstate/pkg/machine"
)

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// StateVisit records one state that was tested during a run.
type StateVisit struct {
	// Key is the serialized form of the visited state.
	Key string `json:"key"`
	// Value is the active node id of the visited state.
	Value string `json:"value"`
	// At is when the state's assertions completed.
	At time.Time `json:"at"`
	// Failed marks visits whose assertions returned an error.
	Failed bool `json:"failed,omitempty"`
}

// TransitionRecord records one transition that was executed during a run.
type TransitionRecord struct {
	// EventType is the type of the event that was taken.
	EventType machine.EventType `json:"event_type"`
	// Payload is the payload of the executed sample event.
	Payload machine.Payload `json:"payload,omitempty"`
	// TargetKey is the serialized form of the state the step reached.
	TargetKey string `json:"target_key"`
	// At is when the transition's execution handler completed.
	At time.Time `json:"at"`
	// Failed marks transitions whose handler returned an error.
	Failed bool `json:"failed,omitempty"`
}

// RunRecord is the persistent trace of one traversal run against a SUT:
// which states were asserted and which transitions were exercised. It is
// an append-only record, not a plan; traversal order is decided elsewhere.
type RunRecord struct {
	ID          string             `json:"id"`
	MachineID   string             `json:"machine_id"`
	StartedAt   time.Time          `json:"started_at"`
	States      []StateVisit       `json:"states,omitempty"`
	Transitions []TransitionRecord `json:"transitions,omitempty"`
}

// RunStore persists run records, enabling coverage inspection across
// independent traversal runs and processes.
type RunStore interface {
	// Save persists the record under its run ID, replacing any previous
	// record with the same ID.
	Save(ctx context.Context, record *RunRecord) error

	// Load retrieves the record for a run ID.
	// Returns ErrRunNotFound if no record exists.
	Load(ctx context.Context, runID string) (*RunRecord, error)

	// Delete removes the record for a run ID.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}
