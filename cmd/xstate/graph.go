package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoyopo/xstate/internal/presentation/graph"
	"github.com/zoyopo/xstate/pkg/machine"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export a machine visualization",
	Long:  `Parses the machine definition and outputs a Mermaid diagram (graph TD) representing its states and transitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := machine.LoadConfig(machinePath(cmd, args))
		if err != nil {
			fmt.Println(errorStyle(fmt.Sprintf("Error loading machine: %v", err)))
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(*config, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
