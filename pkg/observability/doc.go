/*
Package observability provides tools for monitoring test-model runs.

It wires Prometheus collectors into the model's lifecycle hooks so that
states tested, transitions executed and failures are observable while a
traversal engine drives the model.
*/
package observability
