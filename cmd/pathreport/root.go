package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	pathlog "pathreport/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for pathreport.
var rootCmd = &cobra.Command{
	Use:   "pathreport",
	Short: "Turn pathogen pipeline outputs into a single HTML report",
	Long: `Pathreport reads the text outputs of a metagenomic pathogen detection
pipeline — AMR annotations, pathogen read maps, species annotations, and
viral summaries — and renders them into one self-contained HTML report
with interactive charts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pathlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}
