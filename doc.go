/*
Package xstate turns declarative state-machine descriptions into executable
test models for model-based testing.

A machine (pkg/machine) describes the abstract behavior of a system under
test as states, events and transitions. CreateTestModel binds that machine
to executable code: per-event test configurations declare the concrete
sample events worth exploring and the handlers that drive the real system
through each transition, while per-state metadata supplies the assertions
that verify every reached state. The result is a stateless behavior object
(ports.Behavior) consumed by an external traversal engine, which walks the
machine's state space, fires sample events, and calls back into the model
to test and execute what it reaches.

The module deliberately does not implement the traversal itself: path
generation, shortest paths and coverage strategy belong to the consumer of
the behavior contract. What it does guarantee is deterministic expansion
of test configurations, strict ordering of assertions and actions, and
verbatim propagation of every failure.

# Usage

	m, err := machine.New(machine.MachineConfig{
		ID:      "toggle",
		Initial: "inactive",
		States: map[string]machine.StateNode{
			"inactive": {On: map[machine.EventType]machine.TransitionConfig{
				"TOGGLE": {Target: "active"},
			}},
			"active": {On: map[machine.EventType]machine.TransitionConfig{
				"TOGGLE": {Target: "inactive"},
			}},
		},
	}, machine.WithTests(map[string]machine.TestFunc{
		"active": func(ctx context.Context, sut any, state *machine.State) error {
			return sut.(*Widget).AssertOn()
		},
	}))
	if err != nil {
		log.Fatal(err)
	}

	model := xstate.CreateTestModel(m, xstate.EventsConfig{
		"TOGGLE": testmodel.ExecOnly(func(ctx context.Context, sut any, step machine.Step) error {
			return sut.(*Widget).Press()
		}),
	})

The traversal engine then drives model.GetEvents, model.TestState,
model.Execute and model.TestTransition against each visited state.
*/
package xstate
