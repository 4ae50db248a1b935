package machine

// State is a snapshot of the machine after evaluating a transition.
// It is produced by Machine.InitialState and Machine.Transition and is
// treated as read-only by every consumer, the test model included.
type State struct {
	// Value is the identifier of the active state node.
	Value string

	// Context is the extended state carried alongside Value.
	Context Context

	// Meta maps state-node identifiers to their metadata. For a flat
	// machine it holds a single entry keyed by Value.
	Meta map[string]Meta

	// Actions are the side effects emitted on entering Value, in
	// declaration order.
	Actions []Action

	// NextEvents lists the event types that have a transition out of
	// Value, sorted lexicographically.
	NextEvents []EventType

	// Event is the event whose evaluation produced this state. The
	// initial state carries the synthetic init event.
	Event Event
}

// Matches reports whether the state's active node is the given id.
func (s *State) Matches(id string) bool {
	return s != nil && s.Value == id
}

// Step is a single abstract transition: the event that was taken and the
// state the machine evaluated it to.
type Step struct {
	Event Event
	State *State
}

// InitEvent is the synthetic event type recorded on the initial state.
const InitEvent EventType = "xstate.init"
