package machine

import "fmt"

// TransitionConfig is a declarative transition rule attached to an event
// type on a state node.
type TransitionConfig struct {
	// Target is the id of the state node the transition enters.
	Target string `json:"target" yaml:"target"`
	// Cond names a guard registered with WithGuards. Empty means the
	// transition is unconditional.
	Cond string `json:"cond,omitempty" yaml:"cond,omitempty"`
}

// MetaConfig is the declarative half of a node's metadata. The test
// handler itself is code and is bound by name through WithTests.
type MetaConfig struct {
	Skip        bool   `json:"skip,omitempty" yaml:"skip,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// StateNode declares one node of the machine.
type StateNode struct {
	// On maps event types to the transition they trigger.
	On map[EventType]TransitionConfig `json:"on,omitempty" yaml:"on,omitempty"`
	// Entry names actions (registered with WithActions) emitted when the
	// node is entered. Unregistered names stay declarative-only actions.
	Entry []string `json:"entry,omitempty" yaml:"entry,omitempty"`
	// Meta is the node's declarative metadata.
	Meta *MetaConfig `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// MachineConfig declares a complete flat machine.
type MachineConfig struct {
	ID      string               `json:"id" yaml:"id"`
	Initial string               `json:"initial" yaml:"initial"`
	Context Context              `json:"context,omitempty" yaml:"context,omitempty"`
	States  map[string]StateNode `json:"states" yaml:"states"`
}

// Validate checks the configuration for structural errors: a defined and
// existing initial node and transition targets that resolve to nodes.
func (c *MachineConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("machine id is required")
	}
	if c.Initial == "" {
		return fmt.Errorf("machine %q: no initial state defined", c.ID)
	}
	if len(c.States) == 0 {
		return fmt.Errorf("machine %q: no states defined", c.ID)
	}
	if _, ok := c.States[c.Initial]; !ok {
		return fmt.Errorf("machine %q: initial state %q not defined", c.ID, c.Initial)
	}
	for id, node := range c.States {
		for ev, t := range node.On {
			if t.Target == "" {
				return fmt.Errorf("state %q: transition on %q has no target", id, ev)
			}
			if _, ok := c.States[t.Target]; !ok {
				return fmt.Errorf("state %q: transition on %q targets undefined state %q", id, ev, t.Target)
			}
		}
	}
	return nil
}
