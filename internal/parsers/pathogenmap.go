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
	"strings"

	"pathreport/internal/dataset"
	"pathreport/internal/parser"
)

func init() {
	parser.Register(&PathogenMapParser{})
}

var (
	// speciesPattern matches "Species: <name> Total_Reads: <n>".
	speciesPattern = regexp.MustCompile(`^Species:\s+(.+?)\s+Total_Reads:\s+(\d+)`)

	// strainPattern matches "Strain: <name> Reads: <n>".
	strainPattern = regexp.MustCompile(`^Strain:\s+(.*?)\s+Reads:\s+(\d+)`)
)

// PathogenMapParser reads the pathogen map: species lines carrying a read
// total, each followed by indented strain lines with per-strain read counts.
type PathogenMapParser struct{}

// Name returns the parser name used for registration and filtering.
func (p *PathogenMapParser) Name() string { return "pathogen-map" }

// DefaultFile returns the expected filename in the input directory.
func (p *PathogenMapParser) DefaultFile() string { return "Pathogen_map.txt" }

// Count reports how many pathogen species the last parse produced.
func (p *PathogenMapParser) Count(b *dataset.Bundle) int { return len(b.Pathogens) }

// Parse reads the pathogen map from r into b.Pathogens. Lines that match
// neither pattern are logged and skipped.
func (p *PathogenMapParser) Parse(_ context.Context, r io.Reader, b *dataset.Bundle) error {
	var current *dataset.PathogenSpecies

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := speciesPattern.FindStringSubmatch(line); m != nil {
			reads, _ := strconv.Atoi(m[2])
			b.Pathogens = append(b.Pathogens, dataset.PathogenSpecies{
				Name:       strings.TrimSpace(m[1]),
				TotalReads: reads,
			})
			current = &b.Pathogens[len(b.Pathogens)-1]
			continue
		}

		if m := strainPattern.FindStringSubmatch(line); m != nil && current != nil {
			reads, _ := strconv.Atoi(m[2])
			current.Strains = append(current.Strains, dataset.Strain{
				Name:  strings.TrimSpace(m[1]),
				Reads: reads,
			})
			continue
		}

		slog.Debug("unrecognized pathogen map line", "line", line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read pathogen map: %w", err)
	}
	return nil
}
