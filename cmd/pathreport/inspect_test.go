// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_SummarizesInputs(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	out, err := execute(t, "inspect", dir, "--no-color", "--quiet")
	require.NoError(t, err)

	assert.Contains(t, out, "Parser")
	assert.Contains(t, out, "amr")
	assert.Contains(t, out, "AMR_annotation.txt")
	assert.Contains(t, out, "Dataset")
	assert.Contains(t, out, "Pathogen species:    1 (2 strains)")
	assert.Contains(t, out, "Viral families:      1 (1 genera)")
}

func TestInspect_MissingFileIsPartial(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "Species_annotation.txt")))

	out, err := execute(t, "inspect", dir, "--no-color", "--quiet")
	assert.Equal(t, ExitPartialFailure, exitCode(err))
	assert.Contains(t, out, "FAILED")
}

func TestInspect_EmptyDirIsTotalFailure(t *testing.T) {
	_, err := execute(t, "inspect", t.TempDir(), "--no-color", "--quiet")
	assert.Equal(t, ExitTotalFailure, exitCode(err))
}

func TestInspect_ShowsRunInfo(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run_info.toml"),
		[]byte("sample = \"S-042\"\n"), 0o644))

	out, err := execute(t, "inspect", dir, "--no-color", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Run Info")
	assert.Contains(t, out, "S-042")
}
