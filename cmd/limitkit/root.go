package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odrellan/limitkit/catalog"
)

// registry holds the example functions every subcommand operates on.
var registry = catalog.Builtin()

var rootCmd = &cobra.Command{
	Use:   "limitkit",
	Short: "limitkit explores numerical limits, continuity, and epsilon-delta neighbourhoods",
	Long: `limitkit numerically evaluates how a function behaves near a point:
one-sided and two-sided limits, continuity classification, approach
tables, and the largest delta satisfying a given epsilon.

Functions are addressed by catalog ID; run "limitkit list" to see them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
