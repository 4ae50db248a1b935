package xstate

import (
	"github.com/zoyopo/xstate/pkg/machine"
	"github.com/zoyopo/xstate/pkg/testmodel"
)

// Re-exported core types, so simple consumers only import the root package.
type (
	// Event is one concrete sample event.
	Event = machine.Event
	// EventType names a class of events.
	EventType = machine.EventType
	// Payload carries the variable fields of an event.
	Payload = machine.Payload
	// State is an abstract machine state.
	State = machine.State
	// Step is a single abstract transition.
	Step = machine.Step
	// EventsConfig maps event types to their test configuration.
	EventsConfig = testmodel.EventsConfig
	// EventConfig is the per-event-type test configuration.
	EventConfig = testmodel.EventConfig
	// TestModel is the behavior object consumed by a traversal engine.
	TestModel = testmodel.Model
)

// CreateTestModel wraps a machine and a per-event test configuration into
// a behavior object ready to be handed to a traversal engine. Options are
// applied in order; see testmodel.Option for the available ones.
func CreateTestModel(m *machine.Machine, events EventsConfig, opts ...testmodel.Option) *TestModel {
	return testmodel.New(m, events, opts...)
}
