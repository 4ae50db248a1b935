package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoyopo/xstate/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "xstate",
	Short: "xstate inspects declarative test-machine definitions",
	Long:  `xstate validates machine definitions, lists their states and events, and exports Mermaid diagrams of the state graph used for model-based testing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "machine.yaml", "Path to the machine definition")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the command logger from the verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(logging.Level(verbose))
}
