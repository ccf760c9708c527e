package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run preflight checks (default)",
	Args:  cobra.NoArgs,
	RunE:  runCheckCommand,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
