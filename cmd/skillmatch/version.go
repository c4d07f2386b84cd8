package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version; overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the skillmatch version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "skillmatch %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
