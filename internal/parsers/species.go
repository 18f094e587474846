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
	parser.Register(&SpeciesParser{})
}

// confidencePattern extracts the confidence word from a free-text line such
// as "Confidence level of this call: High".
var confidencePattern = regexp.MustCompile(`(?i)Confidence level[^:]*:\s*(\w+)`)

// speciesFields are the keys a record must carry to be kept. Records missing
// any of them are dropped, mirroring the strictness of the source format.
var speciesFields = []string{
	"taxonomy",
	"similarity_threshold",
	"similarity",
	"proportion_threshold",
	"proportion_of_genome_aligned",
	"warnings",
	"impression",
	"confidence_level",
}

// SpeciesParser reads the block-oriented species annotation file: a bare
// "<id>:" line opens a record, followed by "Key: value" lines until the next
// record starts.
type SpeciesParser struct{}

// Name returns the parser name used for registration and filtering.
func (p *SpeciesParser) Name() string { return "species" }

// DefaultFile returns the expected filename in the input directory.
func (p *SpeciesParser) DefaultFile() string { return "Species_annotation.txt" }

// Count reports how many species annotations the last parse produced.
func (p *SpeciesParser) Count(b *dataset.Bundle) int { return len(b.Species) }

// Parse reads species annotation blocks from r into b.Species.
func (p *SpeciesParser) Parse(_ context.Context, r io.Reader, b *dataset.Bundle) error {
	var (
		current dataset.SpeciesAnnotation
		seen    = make(map[string]bool)
	)

	flush := func() {
		if current.ID == "" || len(seen) == 0 {
			return
		}
		for _, f := range speciesFields {
			if !seen[f] {
				slog.Debug("dropping incomplete species annotation", "id", current.ID, "missing", f)
				return
			}
		}
		current.ParseLineage()
		b.Species = append(b.Species, current)
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// A bare "<id>:" line opens a new record.
		if strings.HasSuffix(line, ":") {
			flush()
			current = dataset.SpeciesAnnotation{ID: strings.TrimSuffix(line, ":")}
			seen = make(map[string]bool)
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found || current.ID == "" {
			continue
		}
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		value = strings.TrimSpace(value)

		switch key {
		case "taxonomy":
			current.Taxonomy = value
			seen[key] = true
		case "similarity_threshold":
			setFloat(&current.SimilarityThreshold, key, value, seen)
		case "similarity":
			setFloat(&current.Similarity, key, value, seen)
		case "proportion_threshold":
			setFloat(&current.ProportionThreshold, key, value, seen)
		case "proportion_of_genome_aligned":
			setFloat(&current.ProportionGenomeAligned, key, value, seen)
		case "warnings":
			current.Warnings = value
			seen[key] = true
		case "impression":
			current.Impression = value
			seen[key] = true
		default:
			if m := confidencePattern.FindStringSubmatch(line); m != nil {
				current.ConfidenceLevel = strings.ToLower(m[1])
				seen["confidence_level"] = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read species annotation: %w", err)
	}
	flush()
	return nil
}

// setFloat parses value into dst and marks key as seen; unparseable values
// leave the record incomplete so flush drops it.
func setFloat(dst *float64, key, value string, seen map[string]bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Debug("skipping unparseable numeric field", "key", key, "value", value)
		return
	}
	*dst = f
	seen[key] = true
}
