// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package parsers provides the input-file parsing modules for pathreport.
package parsers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"pathreport/internal/dataset"
	"pathreport/internal/parser"
)

func init() {
	parser.Register(&AMRParser{})
}

// AMRParser reads the AMR annotation summary. The file groups antibiotic
// classes under "### Bin:" headers; each class line carries a count in
// parentheses and may be followed by "- mechanism (count)" lines. Only the
// first bin is kept, matching the upstream summary which emits one bin per
// assembly.
type AMRParser struct{}

// Name returns the parser name used for registration and filtering.
func (p *AMRParser) Name() string { return "amr" }

// DefaultFile returns the expected filename in the input directory.
func (p *AMRParser) DefaultFile() string { return "AMR_annotation.txt" }

// Count reports how many antibiotic classes the last parse produced.
func (p *AMRParser) Count(b *dataset.Bundle) int { return len(b.AMR) }

// Parse reads the AMR summary from r into b.AMR.
func (p *AMRParser) Parse(_ context.Context, r io.Reader, b *dataset.Bundle) error {
	var (
		binNames   []string
		binClasses = make(map[string][]dataset.AMRClass)
		currentBin string
		haveClass  bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[INFO]") {
			continue
		}

		// New bin header.
		if rest, ok := strings.CutPrefix(line, "### Bin:"); ok {
			currentBin = strings.TrimSpace(rest)
			binNames = append(binNames, currentBin)
			haveClass = false
			continue
		}

		// Mechanism line, attached to the most recent class.
		if rest, ok := strings.CutPrefix(line, "- "); ok && currentBin != "" && haveClass {
			name, count, ok := splitNameCount(rest)
			if !ok {
				slog.Debug("skipping malformed mechanism line", "line", line)
				continue
			}
			classes := binClasses[currentBin]
			last := &classes[len(classes)-1]
			last.Mechanisms = append(last.Mechanisms, dataset.ResistanceMechanism{Name: name, Count: count})
			continue
		}

		// Otherwise an antibiotic class line.
		if currentBin != "" {
			name, count, ok := splitNameCount(line)
			if !ok {
				slog.Debug("skipping malformed class line", "line", line)
				continue
			}
			binClasses[currentBin] = append(binClasses[currentBin], dataset.AMRClass{Name: name, Count: count})
			haveClass = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read AMR annotation: %w", err)
	}

	if len(binNames) > 0 {
		b.AMR = binClasses[binNames[0]]
	}
	return nil
}

// splitNameCount splits "<name> (<count>)" at the last opening parenthesis.
func splitNameCount(s string) (name string, count int, ok bool) {
	i := strings.LastIndex(s, "(")
	if i < 0 {
		return "", 0, false
	}
	count, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s[i+1:]), ")"))
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(s[:i]), count, true
}
