/*
Package ports defines the contract boundaries of the test-model core.

These interfaces decouple the core from its collaborators: the machine
evaluation engine that computes abstract states (StateEvaluator), the
traversal and plan-generation engine that consumes behaviors (Behavior),
and the storage backends that persist run records (RunStore).
*/
package ports
