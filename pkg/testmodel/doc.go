/*
Package testmodel builds executable test models from abstract machines.

A Model binds an abstract machine's states and transitions to executable
assertions and side effects: per-event test configurations are expanded
into concrete sample events, per-node metadata supplies state assertions,
and per-event Exec handlers drive the system under test through each
transition. The resulting Model satisfies ports.Behavior and is consumed
by an external traversal engine, which decides which paths to walk; this
package performs no graph search of its own.

Errors are never swallowed: every assertion, action or handler failure is
returned, wrapped with the identifier it is attributed to, to whatever
invoked the behavior operation.
*/
package testmodel
