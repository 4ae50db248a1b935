package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zoyopo/xstate/pkg/machine"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a machine definition for consistency",
	Long:  `Parses the machine definition and reports undefined initial states, dangling transition targets and malformed nodes.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := machinePath(cmd, args)
		if err := runValidate(cmd, path); err != nil {
			fmt.Println(errorStyle(fmt.Sprintf("Validation failed: %v", err)))
			os.Exit(1)
		}
		fmt.Println(okStyle(fmt.Sprintf("Machine %q is valid", path)))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	logger := newLogger(cmd)

	config, err := machine.LoadConfig(path)
	if err != nil {
		return err
	}
	logger.Debug("machine parsed", "id", config.ID, "states", len(config.States))
	return nil
}

func machinePath(cmd *cobra.Command, args []string) string {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}
	return path
}

func okStyle(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#22c55e")).String()
}

func errorStyle(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#ef4444")).String()
}
