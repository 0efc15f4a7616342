package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/odrellan/limitkit/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog of example functions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		infos := make([]catalog.Info, 0, registry.Len())
		for _, id := range registry.IDs() {
			d, lookupErr := registry.Lookup(id)
			if lookupErr != nil {
				return lookupErr
			}
			infos = append(infos, d.Info())
		}

		switch format {
		case "yaml":
			out, marshalErr := yaml.Marshal(infos)
			if marshalErr != nil {
				return marshalErr
			}
			cmd.Print(string(out))
		case "text":
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPOINTS\tSUMMARY")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", info.ID, info.Name, info.Points, info.Summary)
			}
			if flushErr := w.Flush(); flushErr != nil {
				return flushErr
			}
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("format", "text", "output format: text or yaml")
}
