// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"pathreport/internal/config"
	"pathreport/internal/parser"
	"pathreport/internal/parsers"
	"pathreport/internal/pipeline"
	"pathreport/internal/report"
)

// Generate-specific flag values.
var (
	genOutput       string
	genTitle        string
	genParsers      string
	genSections     string
	genTopStrains   int
	genAMRFile      string
	genPathogenFile string
	genSpeciesFile  string
	genViralFile    string
)

// generateCmd renders the HTML report from an input directory.
var generateCmd = &cobra.Command{
	Use:   "generate [input-dir]",
	Short: "Generate the HTML report from pipeline outputs",
	Long: `Generate parses the pipeline output files found in the input directory
(default: current directory) and writes a single self-contained HTML report.

Parsers whose input file is missing are skipped with a warning; the report
is still written from whatever parsed successfully.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file path (default: report.html)")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "report title")
	generateCmd.Flags().StringVarP(&genParsers, "parsers", "p", "", "comma-separated list of parsers to run")
	generateCmd.Flags().StringVar(&genSections, "sections", "", "comma-separated list of report sections to render")
	generateCmd.Flags().IntVar(&genTopStrains, "top-strains", 0, "cap strain pie slices (0 = all)")
	generateCmd.Flags().StringVar(&genAMRFile, "amr", "", "AMR annotation file name")
	generateCmd.Flags().StringVar(&genPathogenFile, "pathogen-map", "", "pathogen map file name")
	generateCmd.Flags().StringVar(&genSpeciesFile, "species", "", "species annotation file name")
	generateCmd.Flags().StringVar(&genViralFile, "viral-summary", "", "viral summary file name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputDir := "."
	if len(args) > 0 {
		inputDir = args[0]
	}
	absPath, err := resolveInputDir(inputDir)
	if err != nil {
		return err
	}

	// Load and validate file config, then merge flags over it.
	fileCfg, err := config.Load(absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "pathreport: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return exitError(ExitInvalidArgs, "pathreport: %v", err)
	}
	settings := config.Merge(fileCfg, flagSettings())

	pipe, err := pipeline.New(pipeline.Config{
		InputDir: absPath,
		Parsers:  settings.Parsers,
		Files:    settings.Files,
	})
	if err != nil {
		available := parser.List()
		sort.Strings(available)
		return exitError(ExitInvalidArgs, "pathreport: %v (available: %s)", err, strings.Join(available, ", "))
	}

	res, runErr := pipe.Run(cmd.Context())
	failed := 0
	for _, r := range res.Results {
		if r.Err != nil {
			failed++
			slog.Warn("parser failed", "parser", r.Parser, "file", r.File, "error", r.Err)
			continue
		}
		slog.Debug("parser finished", "parser", r.Parser, "file", r.File,
			"records", r.Records, "duration", r.Duration)
	}
	if failed == len(res.Results) {
		return exitError(ExitTotalFailure, "pathreport: no input files could be parsed in %s", absPath)
	}
	if runErr != nil {
		return exitError(ExitTotalFailure, "pathreport: %v", runErr)
	}

	// Optional run metadata shown in the report header.
	if run, riErr := parsers.LoadRunInfo(absPath); riErr != nil {
		slog.Warn("ignoring run info", "file", parsers.RunInfoFile, "error", riErr)
	} else if run != nil {
		res.Bundle.Run = run
	}

	if err := writeReport(settings, res); err != nil {
		return err
	}
	slog.Info("report written", "path", settings.Output, "duration", res.Duration)
	fmt.Fprintf(cmd.OutOrStdout(), "pathreport: report written to %s\n", settings.Output)

	if failed > 0 {
		return exitError(ExitPartialFailure,
			"pathreport: %d of %d parsers failed, report is incomplete", failed, len(res.Results))
	}
	return nil
}

// writeReport renders the HTML report to the configured output path.
func writeReport(settings config.Settings, res *pipeline.Result) error {
	f, err := os.Create(settings.Output) //nolint:gosec // user-specified output path
	if err != nil {
		return exitError(ExitTotalFailure, "pathreport: cannot create %s (%v)", settings.Output, err)
	}

	renderErr := report.Render(f, res.Bundle, report.Options{
		Title:      settings.Title,
		Sections:   settings.Sections,
		TopStrains: settings.TopStrains,
	})
	closeErr := f.Close()
	if renderErr != nil {
		return exitError(ExitTotalFailure, "pathreport: %v", renderErr)
	}
	if closeErr != nil {
		return exitError(ExitTotalFailure, "pathreport: cannot write %s (%v)", settings.Output, closeErr)
	}
	return nil
}

// flagSettings collects the generate flags into a Settings value for merging.
func flagSettings() config.Settings {
	return config.Settings{
		Output:     genOutput,
		Title:      genTitle,
		Parsers:    splitList(genParsers),
		Sections:   splitList(genSections),
		TopStrains: genTopStrains,
		Files:      fileOverrides(),
	}
}

// fileOverrides maps the per-parser filename flags onto parser names.
func fileOverrides() map[string]string {
	m := make(map[string]string)
	for name, val := range map[string]string{
		"amr":           genAMRFile,
		"pathogen-map":  genPathogenFile,
		"species":       genSpeciesFile,
		"viral-summary": genViralFile,
	} {
		if val != "" {
			m[name] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// splitList splits a comma-separated flag value into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveInputDir resolves the input directory argument into an absolute,
// symlink-free path and verifies it is a directory.
func resolveInputDir(dir string) (string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "pathreport: cannot resolve path %q (%v)", dir, err)
	}
	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "pathreport: path %q does not exist (check the path and try again)", dir)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "pathreport: path %q does not exist (check the path and try again)", dir)
	}
	if !info.IsDir() {
		return "", exitError(ExitInvalidArgs, "pathreport: %q is not a directory (provide the pipeline output directory)", dir)
	}
	return absPath, nil
}
