package testmodel

import (
	"sort"

	"github.com/zoyopo/xstate/pkg/machine"
)

// ExpandEventCases expands a declarative events configuration into one
// concrete sample event per case. Event types without cases contribute
// exactly one payload-free sample. Samples are ordered by event type
// (lexicographically, Go maps being unordered) and then by case order, so
// expanding the same configuration twice yields structurally equal slices.
// Duplicate payloads across cases are emitted as-is; no deduplication.
func ExpandEventCases(events EventsConfig) []machine.Event {
	samples := make([]machine.Event, 0, len(events))
	for _, evType := range sortedEventTypes(events) {
		samples = append(samples, expandOne(evType, events[evType])...)
	}
	return samples
}

// expandOne produces the sample events for a single event type.
func expandOne(evType machine.EventType, config EventConfig) []machine.Event {
	if config.Cases == nil {
		return []machine.Event{{Type: evType}}
	}
	payloads := config.Cases()
	samples := make([]machine.Event, 0, len(payloads))
	for _, payload := range payloads {
		samples = append(samples, machine.Event{Type: evType, Payload: payload})
	}
	return samples
}

func sortedEventTypes(events EventsConfig) []machine.EventType {
	types := make([]machine.EventType, 0, len(events))
	for evType := range events {
		types = append(types, evType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
