package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoyopo/xstate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of xstate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xstate version %s\n", xstate.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
