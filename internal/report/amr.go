// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"pathreport/internal/chart"
	"pathreport/internal/dataset"
)

func init() {
	Register(&amrSection{})
}

// amrSection reports antibiotic resistance classes and their mechanisms.
type amrSection struct {
	classes []dataset.AMRClass
}

func (s *amrSection) Name() string  { return "amr" }
func (s *amrSection) Title() string { return "AMR Annotation" }
func (s *amrSection) Description() string {
	return "Antibiotic resistance classes and resistance mechanisms"
}

func (s *amrSection) Analyze(b *dataset.Bundle) error {
	if len(b.AMR) == 0 {
		return fmt.Errorf("amr: %w", ErrDataNotAvailable)
	}
	s.classes = b.AMR
	return nil
}

func (s *amrSection) Blocks() []Block {
	return []Block{
		chartBlock(chart.ClassBar(s.classes)),
		chartBlock(chart.MechanismBar(s.classes)),
	}
}
