package main

import (
	"github.com/spf13/cobra"

	"github.com/odrellan/limitkit/continuity"
)

var continuityCmd = &cobra.Command{
	Use:   "continuity <function-id>",
	Short: "Classify a catalog function's continuity at a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := registry.Lookup(args[0])
		if err != nil {
			return err
		}
		at, err := cmd.Flags().GetFloat64("at")
		if err != nil {
			return err
		}
		at, err = approachPoint(at, cmd.Flags().Changed("at"), d)
		if err != nil {
			return err
		}
		tol, err := cmd.Flags().GetFloat64("tolerance")
		if err != nil {
			return err
		}

		res, err := continuity.Check(d.Fn, at, continuity.WithTolerance(tol))
		if err != nil {
			return err
		}

		cmd.Printf("%s at x = %g\n", d.Name, at)
		cmd.Printf("  continuous:    %t\n", res.Continuous)
		cmd.Printf("  discontinuity: %s\n", res.Kind)
		cmd.Printf("  %s\n", res.Description)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(continuityCmd)
	continuityCmd.Flags().Float64("at", 0, "point to classify (default: the function's first point of interest)")
	continuityCmd.Flags().Float64("tolerance", 1e-8, "absolute comparison tolerance")
}
