// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pathreport/internal/config"
	"pathreport/internal/dataset"
	"pathreport/internal/parsers"
	"pathreport/internal/pipeline"
)

var inspectParsers string

// inspectCmd parses the input files and prints a terminal summary without
// writing the HTML report.
var inspectCmd = &cobra.Command{
	Use:   "inspect [input-dir]",
	Short: "Parse pipeline outputs and summarize what the report would contain",
	Long: `Inspect runs the parsers against the input directory and prints a
per-file summary to the terminal. Nothing is written to disk; use it to
check inputs before generating the report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectParsers, "parsers", "p", "", "comma-separated list of parsers to run")
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputDir := "."
	if len(args) > 0 {
		inputDir = args[0]
	}
	absPath, err := resolveInputDir(inputDir)
	if err != nil {
		return err
	}

	fileCfg, err := config.Load(absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "pathreport: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return exitError(ExitInvalidArgs, "pathreport: %v", err)
	}
	settings := config.Merge(fileCfg, config.Settings{Parsers: splitList(inspectParsers)})

	pipe, err := pipeline.New(pipeline.Config{
		InputDir: absPath,
		Parsers:  settings.Parsers,
		Files:    settings.Files,
	})
	if err != nil {
		return exitError(ExitInvalidArgs, "pathreport: %v", err)
	}

	res, _ := pipe.Run(cmd.Context())
	w := cmd.OutOrStdout()

	failed := printParserTable(w, res)
	printDatasetSummary(w, res.Bundle)

	if run, riErr := parsers.LoadRunInfo(absPath); riErr == nil && run != nil {
		fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint("Run Info"))
		if run.Sample != "" {
			fmt.Fprintf(w, "  Sample:   %s\n", run.Sample)
		}
		if run.Platform != "" {
			fmt.Fprintf(w, "  Platform: %s\n", run.Platform)
		}
		if run.Pipeline != "" {
			fmt.Fprintf(w, "  Pipeline: %s\n", run.Pipeline)
		}
	}

	if failed == len(res.Results) {
		return exitError(ExitTotalFailure, "pathreport: no input files could be parsed in %s", absPath)
	}
	if failed > 0 {
		return exitError(ExitPartialFailure, "")
	}
	return nil
}

// printParserTable renders the per-parser status table and returns the
// number of failed parsers.
func printParserTable(w io.Writer, res *pipeline.Result) int {
	tbl := NewTable(
		Column{Header: "Parser"},
		Column{Header: "File"},
		Column{Header: "Records", Align: AlignRight},
		Column{Header: "Duration", Align: AlignRight},
		Column{Header: "Status", Color: colorStatus},
	)

	failed := 0
	for _, r := range res.Results {
		status := "ok"
		switch {
		case r.Err != nil:
			status = "FAILED"
			failed++
		case r.Records == 0:
			status = "EMPTY"
		}
		tbl.AddRow(
			r.Parser,
			r.File,
			fmt.Sprintf("%d", r.Records),
			r.Duration.Round(time.Microsecond).String(),
			status,
		)
	}
	_ = tbl.Render(w)
	return failed
}

// printDatasetSummary prints record totals per dataset.
func printDatasetSummary(w io.Writer, b *dataset.Bundle) {
	strains := 0
	for _, p := range b.Pathogens {
		strains += len(p.Strains)
	}
	genera := 0
	for _, f := range b.Viral {
		genera += len(f.Genera)
	}

	fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint("Dataset"))
	fmt.Fprintf(w, "  AMR classes:         %d\n", len(b.AMR))
	fmt.Fprintf(w, "  Pathogen species:    %d (%d strains)\n", len(b.Pathogens), strains)
	fmt.Fprintf(w, "  Species annotations: %d\n", len(b.Species))
	fmt.Fprintf(w, "  Viral families:      %d (%d genera)\n", len(b.Viral), genera)
}

// colorStatus colors parser status labels.
func colorStatus(val string) string {
	switch val {
	case "FAILED":
		return color.New(color.FgRed).Sprint(val)
	case "EMPTY":
		return color.New(color.FgYellow).Sprint(val)
	case "ok":
		return color.New(color.FgGreen).Sprint(val)
	default:
		return val
	}
}
