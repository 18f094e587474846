// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathreport/internal/dataset"
)

func TestConfidenceColor(t *testing.T) {
	assert.Equal(t, "green", ConfidenceColor("High"))
	assert.Equal(t, "orange", ConfidenceColor("moderate"))
	assert.Equal(t, "red", ConfidenceColor("LOW"))
	assert.Equal(t, "gray", ConfidenceColor("tentative"))
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 50))

	long := "Escherichia coli str. K-12 substr. MG1655, complete genome sequence"
	got := truncateLabel(long, 50)
	assert.Len(t, got, 50)
	assert.Equal(t, long[:47]+"...", got)
}

func TestTruncateLabel_MultiByte(t *testing.T) {
	long := strings.Repeat("é", 60)
	got := truncateLabel(long, 50)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 50, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("é", 47)+"...", got)
}

func TestMechanismMatrix(t *testing.T) {
	classes := []dataset.AMRClass{
		{Name: "Beta-lactam", Count: 12, Mechanisms: []dataset.ResistanceMechanism{
			{Name: "Beta-lactamase", Count: 8},
			{Name: "Porin loss", Count: 4},
		}},
		{Name: "Aminoglycoside", Count: 5, Mechanisms: []dataset.ResistanceMechanism{
			{Name: "Phosphotransferase", Count: 5},
		}},
		{Name: "Tetracycline", Count: 2}, // no mechanisms, no series
	}

	mechs, classNames, values := mechanismMatrix(classes)

	assert.Equal(t, []string{"Beta-lactamase", "Phosphotransferase", "Porin loss"}, mechs)
	assert.Equal(t, []string{"Beta-lactam", "Aminoglycoside"}, classNames)
	assert.Equal(t, []int{8, 0, 4}, values["Beta-lactam"])
	assert.Equal(t, []int{0, 5, 0}, values["Aminoglycoside"])
}

func TestLowestRankCounts_SortedDescending(t *testing.T) {
	anns := []dataset.SpeciesAnnotation{
		{Species: "Escherichia coli"},
		{Species: "Escherichia coli"},
		{Genus: "Streptococcus"},
		{Impression: "Likely contaminant"},
	}

	counts := lowestRankCounts(anns)
	require.Len(t, counts, 3)
	assert.Equal(t, nameCount{Name: "Escherichia coli", Count: 2}, counts[0])
	// Ties break alphabetically.
	assert.Equal(t, "Likely contaminant", counts[1].Name)
	assert.Equal(t, "Streptococcus", counts[2].Name)
}

func TestSunburstData_NestsLineages(t *testing.T) {
	anns := []dataset.SpeciesAnnotation{
		{Kingdom: "Bacteria", Phylum: "Pseudomonadota", Genus: "Escherichia"},
		{Kingdom: "Bacteria", Phylum: "Pseudomonadota", Genus: "Salmonella"},
		{Kingdom: "Bacteria", Phylum: "Bacillota"},
	}

	data := sunburstData(anns)
	require.Len(t, data, 1)
	assert.Equal(t, "Bacteria", data[0].Name)

	phyla := data[0].Children
	require.Len(t, phyla, 2)
	// Children are sorted alphabetically.
	assert.Equal(t, "Bacillota", phyla[0].Name)
	assert.Equal(t, float64(1), phyla[0].Value)
	assert.Equal(t, "Pseudomonadota", phyla[1].Name)
	require.Len(t, phyla[1].Children, 2)
}

func TestSunburstData_NoLineageFallsBack(t *testing.T) {
	anns := []dataset.SpeciesAnnotation{{Impression: "unclassified read cluster"}}

	data := sunburstData(anns)
	require.Len(t, data, 1)
	assert.Equal(t, "unclassified read cluster", data[0].Name)
	assert.Equal(t, float64(1), data[0].Value)
}

func TestScatterGroups_DisplayOrder(t *testing.T) {
	anns := []dataset.SpeciesAnnotation{
		{ID: "a", ConfidenceLevel: "low"},
		{ID: "b", ConfidenceLevel: "high"},
		{ID: "c", ConfidenceLevel: "high"},
		{ID: "d", ConfidenceLevel: "tentative"},
	}

	groups := scatterGroups(anns)
	require.Len(t, groups, 3)
	assert.Equal(t, "high", groups[0].level)
	assert.Len(t, groups[0].anns, 2)
	assert.Equal(t, "low", groups[1].level)
	assert.Equal(t, "tentative", groups[2].level)
}

func TestStrainSlices(t *testing.T) {
	pathogens := []dataset.PathogenSpecies{
		{Name: "Salmonella enterica", TotalReads: 300, Strains: []dataset.Strain{
			{Name: "Typhimurium", Reads: 300},
		}},
		{Name: "Escherichia coli", TotalReads: 1500, Strains: []dataset.Strain{
			{Name: "K-12", Reads: 600},
			{Name: "O157:H7", Reads: 900},
		}},
	}

	data := strainSlices(pathogens, 0)
	require.Len(t, data, 3)
	// Species with the most reads first, strains sorted within species.
	assert.Equal(t, "O157:H7", data[0].Name)
	assert.Equal(t, "K-12", data[1].Name)
	assert.Equal(t, "Typhimurium", data[2].Name)
}

func TestStrainSlices_TopCap(t *testing.T) {
	pathogens := []dataset.PathogenSpecies{
		{Name: "E", TotalReads: 10, Strains: []dataset.Strain{
			{Name: "s1", Reads: 5}, {Name: "s2", Reads: 3}, {Name: "s3", Reads: 2},
		}},
	}

	data := strainSlices(pathogens, 2)
	require.Len(t, data, 2)
	assert.Equal(t, "s1", data[0].Name)
}

func TestFamilyBarSeries(t *testing.T) {
	families := []dataset.ViralFamily{
		{Name: "Retroviridae", Confidence: "Low", Count: 15},
		{Name: "Siphoviridae", Confidence: "High", Count: 120},
		{Name: "Myoviridae", Confidence: "Moderate", Count: 64},
	}

	names, groups := familyBarSeries(families)
	assert.Equal(t, []string{"Siphoviridae", "Myoviridae", "Retroviridae"}, names)

	require.Len(t, groups, 3)
	assert.Equal(t, "high", groups[0].level)
	assert.Equal(t, []int{120, 0, 0}, groups[0].values)
	assert.Equal(t, "moderate", groups[1].level)
	assert.Equal(t, []int{0, 64, 0}, groups[1].values)
	assert.Equal(t, "low", groups[2].level)
	assert.Equal(t, []int{0, 0, 15}, groups[2].values)
}

func TestTreemapNodes(t *testing.T) {
	families := []dataset.ViralFamily{
		{Name: "Siphoviridae", Count: 120, Genera: []dataset.ViralGenus{
			{Name: "Lambdavirus", Count: 45},
		}},
	}

	nodes := treemapNodes(families)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Siphoviridae", nodes[0].Name)
	assert.Equal(t, 120, nodes[0].Value)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "Lambdavirus", nodes[0].Children[0].Name)
}

func TestClassBar_Builds(t *testing.T) {
	classes := []dataset.AMRClass{{Name: "Beta-lactam", Count: 12}}
	bar := ClassBar(classes)
	require.NotNil(t, bar)
}
