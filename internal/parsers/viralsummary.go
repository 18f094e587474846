// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package parsers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"

	"pathreport/internal/dataset"
	"pathreport/internal/parser"
)

func init() {
	parser.Register(&ViralSummaryParser{})
}

var (
	// familyPattern matches unindented "<count> <name> [Family] — <confidence> confidence".
	familyPattern = regexp.MustCompile(`^(\d+) (\w+) \[Family\] — (\w+) confidence`)

	// genusPattern matches indented "<count> <name> [Genus]" lines.
	genusPattern = regexp.MustCompile(`^\s+(\d+) (\w+) \[Genus\]`)
)

// ViralSummaryParser reads the structured viral summary: family lines at the
// start of a line, genus lines indented beneath them. Indentation is
// significant, so lines are matched untrimmed.
type ViralSummaryParser struct{}

// Name returns the parser name used for registration and filtering.
func (p *ViralSummaryParser) Name() string { return "viral-summary" }

// DefaultFile returns the expected filename in the input directory.
func (p *ViralSummaryParser) DefaultFile() string { return "structured_viral_summary.tsv" }

// Count reports how many viral families the last parse produced.
func (p *ViralSummaryParser) Count(b *dataset.Bundle) int { return len(b.Viral) }

// Parse reads the viral summary from r into b.Viral.
func (p *ViralSummaryParser) Parse(_ context.Context, r io.Reader, b *dataset.Bundle) error {
	var current *dataset.ViralFamily

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := familyPattern.FindStringSubmatch(line); m != nil {
			count, _ := strconv.Atoi(m[1])
			b.Viral = append(b.Viral, dataset.ViralFamily{
				Name:       m[2],
				Confidence: m[3],
				Count:      count,
			})
			current = &b.Viral[len(b.Viral)-1]
			continue
		}

		if m := genusPattern.FindStringSubmatch(line); m != nil && current != nil {
			count, _ := strconv.Atoi(m[1])
			current.Genera = append(current.Genera, dataset.ViralGenus{Name: m[2], Count: count})
			continue
		}

		if line != "" {
			slog.Debug("unrecognized viral summary line", "line", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read viral summary: %w", err)
	}
	return nil
}
