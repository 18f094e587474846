// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package parser defines the Parser interface and a registry for managing
// the available input-file parsers.
package parser

import (
	"context"
	"fmt"
	"io"
	"sync"

	"pathreport/internal/dataset"
)

// Parser reads one input file and fills its slice of the dataset bundle.
type Parser interface {
	// Name returns the unique name of this parser (e.g., "amr", "pathogen-map").
	Name() string

	// DefaultFile returns the expected filename in the input directory.
	DefaultFile() string

	// Parse reads records from r into b. Malformed rows are skipped, not fatal.
	Parse(ctx context.Context, r io.Reader, b *dataset.Bundle) error
}

// Counter is an optional interface parsers can implement to report how many
// records their last Parse call produced. The pipeline checks for it after
// Parse returns.
type Counter interface {
	Count(b *dataset.Bundle) int
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Parser)
)

// Register adds a parser to the global registry.
// It panics if a parser with the same name is already registered.
func Register(p Parser) {
	mu.Lock()
	defer mu.Unlock()
	name := p.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("parser already registered: %s", name))
	}
	registry[name] = p
}

// Get returns the parser with the given name, or nil if not found.
func Get(name string) Parser {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered parsers in no particular order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Parser)
}
