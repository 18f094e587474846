// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package config handles .pathreport.yaml configuration files.
package config

// Config represents the contents of a .pathreport.yaml file found in the
// input directory.
type Config struct {
	Output     string            `yaml:"output,omitempty"`
	Title      string            `yaml:"title,omitempty"`
	Parsers    []string          `yaml:"parsers,omitempty"`
	Files      map[string]string `yaml:"files,omitempty"`
	Sections   []string          `yaml:"sections,omitempty"`
	TopStrains int               `yaml:"top_strains,omitempty"`
}

// Settings is the fully resolved configuration for one generate run, after
// flags and file config have been merged.
type Settings struct {
	Output     string
	Title      string
	Parsers    []string
	Files      map[string]string
	Sections   []string
	TopStrains int
}

// FileName is the expected config file name in the input directory.
const FileName = ".pathreport.yaml"

// Defaults applied when neither flags nor file config set a value.
const (
	DefaultOutput = "report.html"
	DefaultTitle  = "Pathogen Analysis Report"
)
