// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package parsers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"pathreport/internal/dataset"
)

// RunInfoFile is the optional run metadata file in the input directory.
const RunInfoFile = "run_info.toml"

// LoadRunInfo reads run_info.toml from dir. A missing file is not an error;
// it returns (nil, nil) so the report simply omits the metadata block.
func LoadRunInfo(dir string) (*dataset.RunInfo, error) {
	path := filepath.Join(dir, RunInfoFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var info dataset.RunInfo
	if _, err := toml.DecodeFile(path, &info); err != nil {
		return nil, fmt.Errorf("parse %s: %w", RunInfoFile, err)
	}
	return &info, nil
}
