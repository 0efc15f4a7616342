package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/odrellan/limitkit/core"
	"github.com/odrellan/limitkit/epsdelta"
	"github.com/odrellan/limitkit/limit"
)

var deltaCmd = &cobra.Command{
	Use:   "delta <function-id>",
	Short: "Find the widest delta satisfying a given epsilon at a point",
	Long: `delta searches for the largest neighbourhood radius around the approach
point such that every sampled function value stays within epsilon of the
limit. The limit value is taken from --limit when given, otherwise it is
evaluated numerically first.`,
	Args: cobra.ExactArgs(1),
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
		eps, err := cmd.Flags().GetFloat64("eps")
		if err != nil {
			return err
		}
		maxDelta, err := cmd.Flags().GetFloat64("max")
		if err != nil {
			return err
		}

		limitValue, err := cmd.Flags().GetFloat64("limit")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("limit") {
			res, evalErr := limit.Evaluate(d.Fn, at, core.Both)
			if evalErr != nil {
				return evalErr
			}
			limitValue = res.Value
			cmd.Printf("limit of %s as x → %g: %s\n", d.Name, at, formatLimit(limitValue))
		}

		delta, err := epsdelta.FindDelta(d.Fn, at, limitValue, eps, epsdelta.WithMaxDelta(maxDelta))
		if err != nil {
			return err
		}
		if math.IsNaN(delta) {
			cmd.Printf("no delta ≤ %g satisfies ε = %g at x = %g\n", maxDelta, eps, at)
			return nil
		}
		cmd.Printf("ε = %g is satisfied by δ = %.10g\n", eps, delta)

		if check, checkErr := cmd.Flags().GetFloat64("check"); checkErr == nil && check > 0 {
			ok := epsdelta.Validate(d.Fn, at, limitValue, eps, check)
			cmd.Printf("your δ = %g: valid = %t\n", check, ok)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deltaCmd)
	deltaCmd.Flags().Float64("at", 0, "approach point (default: the function's first point of interest)")
	deltaCmd.Flags().Float64("eps", 0.1, "output tolerance epsilon")
	deltaCmd.Flags().Float64("limit", 0, "known limit value (default: evaluate it numerically)")
	deltaCmd.Flags().Float64("max", 1, "upper bound of the delta search")
	deltaCmd.Flags().Float64("check", 0, "also validate this caller-chosen delta")
}
