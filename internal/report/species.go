// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"pathreport/internal/chart"
	"pathreport/internal/dataset"
)

func init() {
	Register(&speciesSection{})
}

// speciesSection reports per-node species annotations: classification
// distribution, taxonomic lineage, and similarity against genome coverage.
type speciesSection struct {
	anns []dataset.SpeciesAnnotation
}

func (s *speciesSection) Name() string  { return "species-annotation" }
func (s *speciesSection) Title() string { return "Species Annotation" }
func (s *speciesSection) Description() string {
	return "Taxonomic classifications with similarity and coverage confidence"
}

func (s *speciesSection) Analyze(b *dataset.Bundle) error {
	if len(b.Species) == 0 {
		return fmt.Errorf("species: %w", ErrDataNotAvailable)
	}
	s.anns = b.Species
	return nil
}

func (s *speciesSection) Blocks() []Block {
	return []Block{
		chartBlock(chart.LowestRankPie(s.anns)),
		chartBlock(chart.TaxonomySunburst(s.anns)),
		chartBlock(chart.SimilarityScatter(s.anns)),
	}
}
