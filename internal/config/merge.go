// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package config

// Merge combines file-based config with flag-provided settings.
// Flag values take precedence; zero-value fields fall through to file config.
// Defaults for output and title are applied last.
func Merge(fileCfg *Config, flags Settings) Settings {
	result := flags

	if result.Output == "" {
		result.Output = fileCfg.Output
	}
	if result.Output == "" {
		result.Output = DefaultOutput
	}

	if result.Title == "" {
		result.Title = fileCfg.Title
	}
	if result.Title == "" {
		result.Title = DefaultTitle
	}

	if len(result.Parsers) == 0 {
		result.Parsers = fileCfg.Parsers
	}
	if len(result.Sections) == 0 {
		result.Sections = fileCfg.Sections
	}
	if result.TopStrains == 0 {
		result.TopStrains = fileCfg.TopStrains
	}

	// Per-parser filename overrides: flags win per entry.
	if len(fileCfg.Files) > 0 {
		if result.Files == nil {
			result.Files = make(map[string]string)
		}
		for name, file := range fileCfg.Files {
			if result.Files[name] == "" {
				result.Files[name] = file
			}
		}
	}

	return result
}
