package testmodel

import (
	"context"

	"github.com/zoyopo/xstate/pkg/machine"
)

// CasesFunc produces the ordered payload variants a sample event of one
// type can carry. It must be a pure generator: invoking it twice yields
// structurally equal sequences. Re-invocation happens on every expansion;
// idempotence is the author's responsibility and is not enforced here.
type CasesFunc func() []machine.Payload

// ExecFunc drives the system under test through one transition step.
type ExecFunc func(ctx context.Context, sut any, step machine.Step) error

// EventConfig is the per-event-type test configuration: optional payload
// variants (Cases) and an optional execution handler (Exec). Both fields
// may be nil; a nil field simply means "nothing to do" for that concern.
type EventConfig struct {
	Cases CasesFunc
	Exec  ExecFunc
}

// ExecOnly is the shorthand for an event type that needs no payload
// variants, just an execution handler.
func ExecOnly(fn ExecFunc) EventConfig {
	return EventConfig{Exec: fn}
}

// WithCases is the shorthand for an event type that needs payload variants
// but no execution handler.
func WithCases(fn CasesFunc) EventConfig {
	return EventConfig{Cases: fn}
}

// EventsConfig maps event type names to their test configuration. Keys
// must exactly match event type names the machine can emit.
type EventsConfig map[machine.EventType]EventConfig
