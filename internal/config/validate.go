// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"pathreport/internal/parser"
	"pathreport/internal/report"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	for _, name := range cfg.Parsers {
		if parser.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("parsers: unknown parser %q", name))
		}
	}

	for name := range cfg.Files {
		if parser.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("files.%s: unknown parser", name))
		}
	}

	for _, name := range cfg.Sections {
		if report.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("sections: unknown section %q", name))
		}
	}

	if cfg.TopStrains < 0 {
		errs = append(errs, fmt.Sprintf("top_strains: must be non-negative, got %d", cfg.TopStrains))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid %s: %s", FileName, strings.Join(errs, "; "))
	}
	return nil
}
