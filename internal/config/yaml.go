// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the .pathreport.yaml file from the given input directory.
// If the file does not exist, it returns a zero-value Config and nil error.
func Load(inputDir string) (*Config, error) {
	path := filepath.Join(inputDir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user-provided input dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
