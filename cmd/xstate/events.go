package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zoyopo/xstate/pkg/machine"
)

// eventsCmd lists the event surface of a machine, the names an events
// test configuration must match exactly.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the event types a machine can receive",
	Long:  `Parses the machine definition and prints every event type together with the states it can fire from.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := machine.LoadConfig(machinePath(cmd, args))
		if err != nil {
			fmt.Println(errorStyle(fmt.Sprintf("Error loading machine: %v", err)))
			os.Exit(1)
		}

		fromStates := make(map[machine.EventType][]string)
		for id, node := range config.States {
			for evType := range node.On {
				fromStates[evType] = append(fromStates[evType], id)
			}
		}

		types := make([]machine.EventType, 0, len(fromStates))
		for evType := range fromStates {
			types = append(types, evType)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

		for _, evType := range types {
			states := fromStates[evType]
			sort.Strings(states)
			fmt.Printf("%s\n", evType)
			for _, id := range states {
				fmt.Printf("  from %s -> %s\n", id, config.States[id].On[evType].Target)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
