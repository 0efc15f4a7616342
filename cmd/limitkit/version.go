package main

import "github.com/spf13/cobra"

// version is stamped at release time.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the limitkit version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("limitkit " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
