// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullLineage = `"d__Bacteria;p__Pseudomonadota;c__Gammaproteobacteria;o__Enterobacterales;f__Enterobacteriaceae;g__Escherichia;s__Escherichia coli"`

func TestParseLineage_FullLineage(t *testing.T) {
	a := SpeciesAnnotation{Taxonomy: fullLineage}
	a.ParseLineage()

	assert.Equal(t, "Bacteria", a.Kingdom)
	assert.Equal(t, "Pseudomonadota", a.Phylum)
	assert.Equal(t, "Gammaproteobacteria", a.Class)
	assert.Equal(t, "Enterobacterales", a.Order)
	assert.Equal(t, "Enterobacteriaceae", a.Family)
	assert.Equal(t, "Escherichia", a.Genus)
	assert.Equal(t, "Escherichia coli", a.Species)
}

func TestParseLineage_PartialLineage(t *testing.T) {
	a := SpeciesAnnotation{Taxonomy: `"d__Bacteria;p__Bacillota;c__Bacilli;o__Lactobacillales;f__Streptococcaceae;g__Streptococcus;s__"`}
	a.ParseLineage()

	assert.Equal(t, "Streptococcus", a.Genus)
	assert.Empty(t, a.Species)
}

func TestParseLineage_NotQuotedGTDB(t *testing.T) {
	a := SpeciesAnnotation{Taxonomy: "d__Bacteria;p__Bacillota"}
	a.ParseLineage()

	// Without the leading quote the string is not recognized as a lineage.
	assert.Empty(t, a.Kingdom)
	assert.Empty(t, a.Phylum)
}

func TestLowestRank(t *testing.T) {
	tests := []struct {
		name     string
		ann      SpeciesAnnotation
		wantRank string
		wantName string
	}{
		{
			name:     "species wins",
			ann:      SpeciesAnnotation{Genus: "Escherichia", Species: "Escherichia coli"},
			wantRank: "Species",
			wantName: "Escherichia coli",
		},
		{
			name:     "genus when species empty",
			ann:      SpeciesAnnotation{Family: "Enterobacteriaceae", Genus: "Escherichia"},
			wantRank: "Genus",
			wantName: "Escherichia",
		},
		{
			name:     "kingdom only",
			ann:      SpeciesAnnotation{Kingdom: "Bacteria"},
			wantRank: "Kingdom",
			wantName: "Bacteria",
		},
		{
			name:     "no lineage falls back to impression",
			ann:      SpeciesAnnotation{Impression: "Likely contaminant"},
			wantRank: "Unknown",
			wantName: "Likely contaminant",
		},
		{
			name:     "nothing at all",
			ann:      SpeciesAnnotation{},
			wantRank: "Unknown",
			wantName: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, name := tt.ann.LowestRank()
			assert.Equal(t, tt.wantRank, rank)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestLineage_Order(t *testing.T) {
	a := SpeciesAnnotation{Taxonomy: fullLineage}
	a.ParseLineage()

	got := a.Lineage()
	assert.Equal(t, []string{
		"Bacteria", "Pseudomonadota", "Gammaproteobacteria",
		"Enterobacterales", "Enterobacteriaceae", "Escherichia", "Escherichia coli",
	}, got)
}
