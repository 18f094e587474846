// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	amrFixture = `[INFO] AMR annotation finished
### Bin: bin.1
Beta-lactam (12)
- Beta-lactamase (8)
Aminoglycoside (5)
`
	pathogenFixture = `Species: Escherichia coli Total_Reads: 1500
    Strain: Escherichia coli K-12 Reads: 900
    Strain: Escherichia coli O157:H7 Reads: 600
`
	speciesFixture = `NODE_1:
Taxonomy: "d__Bacteria;p__Pseudomonadota;c__Gammaproteobacteria;o__Enterobacterales;f__Enterobacteriaceae;g__Escherichia;s__Escherichia coli"
Similarity_threshold: 0.95
Similarity: 0.998
Proportion_threshold: 0.60
Proportion_of_genome_aligned: 0.87
Warnings: none
Impression: Escherichia coli detected
Confidence level of this detection: High
`
	viralFixture = `120 Siphoviridae [Family] — High confidence
	45 Lambdavirus [Genus]
`
)

// writeInputs creates a full set of parseable input files in dir.
func writeInputs(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"AMR_annotation.txt":           amrFixture,
		"Pathogen_map.txt":             pathogenFixture,
		"Species_annotation.txt":       speciesFixture,
		"structured_viral_summary.tsv": viralFixture,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

// resetFlags clears flag-bound globals so values never leak between tests.
func resetFlags() {
	genOutput, genTitle, genParsers, genSections = "", "", "", ""
	genTopStrains = 0
	genAMRFile, genPathogenFile, genSpeciesFile, genViralFile = "", "", "", ""
	inspectParsers = ""
	verbose, quiet, noColor = false, false, false
}

// execute runs the CLI in-process and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// exitCode extracts the exit code from an error, 0 for nil.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ece *exitCodeError
	if errors.As(err, &ece) {
		return ece.ExitCode()
	}
	return 1
}

func TestGenerate_WritesReport(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	out := filepath.Join(t.TempDir(), "report.html")

	stdout, err := execute(t, "generate", dir, "-o", out, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "report written to")

	html, err := os.ReadFile(out) //nolint:gosec // test temp file
	require.NoError(t, err)
	assert.Contains(t, string(html), "Pathogen Map")
	assert.Contains(t, string(html), "Viral Summary")
}

func TestGenerate_PartialFailureStillWrites(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "structured_viral_summary.tsv")))
	out := filepath.Join(t.TempDir(), "report.html")

	_, err := execute(t, "generate", dir, "-o", out, "--quiet")
	assert.Equal(t, ExitPartialFailure, exitCode(err))

	html, readErr := os.ReadFile(out) //nolint:gosec // test temp file
	require.NoError(t, readErr)
	assert.Contains(t, string(html), "Pathogen Map")
	assert.NotContains(t, string(html), "Viral Summary")
}

func TestGenerate_EmptyDirFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")

	_, err := execute(t, "generate", t.TempDir(), "-o", out, "--quiet")
	assert.Equal(t, ExitTotalFailure, exitCode(err))
	assert.NoFileExists(t, out)
}

func TestGenerate_BadPathFails(t *testing.T) {
	_, err := execute(t, "generate", "/nonexistent/path", "--quiet")
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
}

func TestGenerate_UnknownParserFails(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	_, err := execute(t, "generate", dir, "-p", "bogus", "--quiet")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
	assert.Contains(t, err.Error(), "available:")
}

func TestGenerate_ParserSubset(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	out := filepath.Join(t.TempDir(), "report.html")

	_, err := execute(t, "generate", dir, "-o", out, "-p", "amr", "--quiet")
	require.NoError(t, err)

	html, readErr := os.ReadFile(out) //nolint:gosec // test temp file
	require.NoError(t, readErr)
	assert.Contains(t, string(html), "AMR Annotation")
	assert.NotContains(t, string(html), "Pathogen Map")
}

func TestGenerate_RunInfoInHeader(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	runInfo := "sample = \"S-042\"\nplatform = \"nanopore\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run_info.toml"), []byte(runInfo), 0o644))
	out := filepath.Join(t.TempDir(), "report.html")

	_, err := execute(t, "generate", dir, "-o", out, "--quiet")
	require.NoError(t, err)

	html, readErr := os.ReadFile(out) //nolint:gosec // test temp file
	require.NoError(t, readErr)
	assert.Contains(t, string(html), "S-042")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"amr", "species"}, splitList("amr, species"))
	assert.Equal(t, []string{"amr"}, splitList("amr,,"))
}

func TestFileOverrides(t *testing.T) {
	genAMRFile = "custom.txt"
	defer func() { genAMRFile = "" }()

	m := fileOverrides()
	assert.Equal(t, map[string]string{"amr": "custom.txt"}, m)
}

func TestFileOverrides_EmptyIsNil(t *testing.T) {
	genAMRFile, genPathogenFile, genSpeciesFile, genViralFile = "", "", "", ""
	assert.Nil(t, fileOverrides())
}

func TestExitError_DefaultMessages(t *testing.T) {
	assert.Equal(t, "pathreport: some parsers failed", exitError(ExitPartialFailure, "").msg)
	assert.Equal(t, "pathreport: all parsers failed", exitError(ExitTotalFailure, "").msg)
	assert.Equal(t, "boom 7", exitError(ExitTotalFailure, "boom %d", 7).msg)
}
