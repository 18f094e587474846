package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the pathreport version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the pathreport binary.",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("pathreport %s\n", Version)
	},
}
