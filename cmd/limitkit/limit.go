package main

import (
	"github.com/spf13/cobra"

	"github.com/odrellan/limitkit/limit"
)

var limitCmd = &cobra.Command{
	Use:   "limit <function-id>",
	Short: "Evaluate the numerical limit of a catalog function at a point",
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
		side, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}
		dir, err := parseDirection(side)
		if err != nil {
			return err
		}
		tol, err := cmd.Flags().GetFloat64("tolerance")
		if err != nil {
			return err
		}

		res, err := limit.Evaluate(d.Fn, at, dir, limit.WithTolerance(tol))
		if err != nil {
			return err
		}

		cmd.Printf("%s as x → %g (%s)\n", d.Name, at, dir)
		cmd.Printf("  type:   %s\n", res.Type)
		cmd.Printf("  exists: %t\n", res.Exists)
		cmd.Printf("  value:  %s\n", formatLimit(res.Value))
		cmd.Printf("  left:   %s\n", formatLimit(res.Left))
		cmd.Printf("  right:  %s\n", formatLimit(res.Right))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(limitCmd)
	limitCmd.Flags().Float64("at", 0, "approach point (default: the function's first point of interest)")
	limitCmd.Flags().String("side", "both", "approach side: left, right, or both")
	limitCmd.Flags().Float64("tolerance", 1e-8, "absolute convergence tolerance")
}
