package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/odrellan/limitkit/limit"
)

var tableCmd = &cobra.Command{
	Use:   "table <function-id>",
	Short: "Print the approach table for a catalog function at a point",
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
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}

		seq, err := limit.Approximate(d.Fn, at, dir, limit.WithSteps(steps))
		if err != nil {
			return err
		}

		cmd.Printf("%s approaching x = %g from the %s\n", d.Name, at, dir)
		if !d.Domain.Contains(at) {
			cmd.Printf("note: x = %g lies outside the suggested domain [%g, %g]\n",
				at, d.Domain.Lo, d.Domain.Hi)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "n\tx\tf(x)\t|x−a|\t")
		for i, s := range seq {
			fmt.Fprintf(w, "%d\t%.10g\t%s\t%.1e\t\n", i+1, s.X, formatValue(s.FX), s.Distance)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Float64("at", 0, "approach point (default: the function's first point of interest)")
	tableCmd.Flags().String("side", "left", "approach side: left or right")
	tableCmd.Flags().Int("steps", 10, "number of samples in the sequence")
}
