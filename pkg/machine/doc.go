/*
Package machine evaluates declarative finite-state machine configurations.

A MachineConfig declares the nodes, transitions, entry actions and metadata
of a flat machine; guard, action and test code is bound to the declaration
by name through functional options. Evaluation is pure: Transition maps a
(state, event) pair to a new State and mutates nothing, so one Machine can
back any number of concurrent test-model runs.

The State values it produces carry everything the test model in
pkg/testmodel reads: the active node, context, per-node metadata, emitted
actions and the set of event types that lead out of the node.
*/
package machine
