// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package report provides a pluggable section registry for the HTML report.
// Each section consumes a parsed dataset bundle and contributes a titled
// group of chart and markup blocks to the final page.
package report

import (
	"errors"
	"fmt"
	"html/template"
	"sync"

	"github.com/go-echarts/go-echarts/v2/render"

	"pathreport/internal/dataset"
)

// ErrDataNotAvailable indicates a section's required records are missing,
// typically because the corresponding parser was not run.
var ErrDataNotAvailable = errors.New("data not available")

// Block is one renderable fragment of a section: the element markup and an
// optional script that initializes a chart inside it.
type Block struct {
	Element template.HTML
	Script  template.HTML
}

// Section is a pluggable report section that analyzes the dataset bundle
// and contributes blocks to the rendered page.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "amr").
	Name() string

	// Title returns the heading shown on the rendered page.
	Title() string

	// Description returns a human-readable description of what this section shows.
	Description() string

	// Analyze processes the bundle and prepares internal state for rendering.
	// Returns ErrDataNotAvailable (wrapped) if required records are missing.
	Analyze(b *dataset.Bundle) error

	// Blocks returns the rendered fragments. Only valid after a successful Analyze.
	Blocks() []Block
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// displayOrder fixes the default page order. Sections registered outside
// this list render after it, in registration order.
var displayOrder = []string{"pathogen-map", "species-annotation", "amr", "viral-summary"}

// ResolveSections determines which sections to render. If filter is empty,
// all registered sections are used in display order.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		seen := make(map[string]bool)
		var out []string
		for _, name := range displayOrder {
			if Get(name) != nil {
				seen[name] = true
				out = append(out, name)
			}
		}
		for _, name := range List() {
			if !seen[name] {
				out = append(out, name)
			}
		}
		return out
	}
	var out []string
	for _, name := range filter {
		if Get(name) != nil {
			out = append(out, name)
		}
	}
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}

// snippetChart is any go-echarts chart that can render itself as an
// embeddable fragment.
type snippetChart interface {
	RenderSnippet() render.ChartSnippet
}

// chartBlock converts a chart into a Block holding its container element
// and initialization script.
func chartBlock(c snippetChart) Block {
	s := c.RenderSnippet()
	return Block{
		Element: template.HTML(s.Element),
		Script:  template.HTML(s.Script),
	}
}
