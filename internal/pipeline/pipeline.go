// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package pipeline orchestrates the input parsers and aggregates their
// results into a dataset bundle ready for report rendering.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"pathreport/internal/dataset"
	"pathreport/internal/parser"
)

// Config holds the configuration for one pipeline run.
type Config struct {
	// InputDir is the directory containing the input files.
	InputDir string

	// Parsers lists the parser names to run. Empty means all registered.
	Parsers []string

	// Files overrides the input filename per parser name.
	Files map[string]string
}

// ParserResult holds the outcome of a single parser run.
type ParserResult struct {
	Parser   string
	File     string
	Records  int
	Duration time.Duration
	Err      error
}

// Result holds the aggregate output of a pipeline run.
type Result struct {
	Bundle   *dataset.Bundle
	Results  []ParserResult
	Duration time.Duration
}

// Pipeline runs a fixed set of parsers against one input directory.
type Pipeline struct {
	config  Config
	parsers []parser.Parser
}

// New creates a Pipeline from the given Config. It resolves parsers from the
// global registry; an empty list selects all registered parsers sorted by
// name for deterministic ordering.
func New(config Config) (*Pipeline, error) {
	parsers, err := resolveParsers(config.Parsers)
	if err != nil {
		return nil, err
	}
	return &Pipeline{config: config, parsers: parsers}, nil
}

// NewWithParsers creates a Pipeline with explicitly provided parsers,
// bypassing the global registry. This is primarily useful for testing.
func NewWithParsers(config Config, parsers []parser.Parser) *Pipeline {
	return &Pipeline{config: config, parsers: parsers}
}

// Run executes all configured parsers, one goroutine per input file, each
// writing into its own result slot. A parser that fails (missing file,
// unreadable input) is recorded in its ParserResult but does not abort the
// run. After all parsers finish the bundle is validated: a parser that
// succeeded yet produced zero records is an error, since every downstream
// section needs data.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	bundle := &dataset.Bundle{}
	results := make([]ParserResult, len(p.parsers))

	var g errgroup.Group
	for i, pr := range p.parsers {
		i, pr := i, pr
		g.Go(func() error {
			results[i] = p.runParser(ctx, pr, bundle)
			return nil
		})
	}
	// Parser errors are carried in the result slots, never returned.
	_ = g.Wait()

	res := &Result{
		Bundle:   bundle,
		Results:  results,
		Duration: time.Since(start),
	}
	return res, validate(res)
}

// runParser executes a single parser against its input file and captures the
// result and timing.
func (p *Pipeline) runParser(ctx context.Context, pr parser.Parser, b *dataset.Bundle) ParserResult {
	name := p.config.Files[pr.Name()]
	if name == "" {
		name = pr.DefaultFile()
	}
	path := filepath.Join(p.config.InputDir, name)

	start := time.Now()
	result := ParserResult{Parser: pr.Name(), File: name}

	f, err := os.Open(path) //nolint:gosec // user-specified input dir
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	defer f.Close() //nolint:errcheck // read-only file

	result.Err = pr.Parse(ctx, f, b)
	result.Duration = time.Since(start)
	if c, ok := pr.(parser.Counter); ok && result.Err == nil {
		result.Records = c.Count(b)
	}
	return result
}

// validate checks that every parser that ran without error actually produced
// records. The report is meaningless with silently empty datasets.
func validate(res *Result) error {
	var errs []error
	for _, r := range res.Results {
		if r.Err == nil && r.Records == 0 {
			errs = append(errs, fmt.Errorf("no records parsed from %s", r.File))
		}
	}
	return errors.Join(errs...)
}

// resolveParsers looks up parsers by name from the global registry.
// If names is empty, all registered parsers are returned in sorted order.
func resolveParsers(names []string) ([]parser.Parser, error) {
	if len(names) == 0 {
		allNames := parser.List()
		sort.Strings(allNames)
		parsers := make([]parser.Parser, len(allNames))
		for i, name := range allNames {
			parsers[i] = parser.Get(name)
		}
		return parsers, nil
	}

	parsers := make([]parser.Parser, len(names))
	for i, name := range names {
		pr := parser.Get(name)
		if pr == nil {
			return nil, fmt.Errorf("unknown parser: %q", name)
		}
		parsers[i] = pr
	}
	return parsers, nil
}
