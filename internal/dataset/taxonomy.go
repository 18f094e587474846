// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package dataset

import "strings"

// SpeciesAnnotation is one record from the species annotation file. The seven
// rank fields are derived from the GTDB lineage string at parse time.
type SpeciesAnnotation struct {
	ID                      string
	Taxonomy                string
	SimilarityThreshold     float64
	Similarity              float64
	ProportionThreshold     float64
	ProportionGenomeAligned float64
	Warnings                string
	Impression              string
	ConfidenceLevel         string // lower-cased: "high", "moderate", "low"

	Kingdom string
	Phylum  string
	Class   string
	Order   string
	Family  string
	Genus   string
	Species string
}

// rankPrefixes maps GTDB lineage prefixes to a setter on SpeciesAnnotation.
var rankPrefixes = []struct {
	prefix string
	set    func(a *SpeciesAnnotation, v string)
}{
	{"d__", func(a *SpeciesAnnotation, v string) { a.Kingdom = v }},
	{"p__", func(a *SpeciesAnnotation, v string) { a.Phylum = v }},
	{"c__", func(a *SpeciesAnnotation, v string) { a.Class = v }},
	{"o__", func(a *SpeciesAnnotation, v string) { a.Order = v }},
	{"f__", func(a *SpeciesAnnotation, v string) { a.Family = v }},
	{"g__", func(a *SpeciesAnnotation, v string) { a.Genus = v }},
	{"s__", func(a *SpeciesAnnotation, v string) { a.Species = v }},
}

// ParseLineage fills the rank fields from a quoted GTDB lineage string such as
//
//	"d__Bacteria;p__Pseudomonadota;c__Gammaproteobacteria;..."
//
// Strings that do not start with the quoted d__ marker are left untouched,
// matching the loose handling of the source format.
func (a *SpeciesAnnotation) ParseLineage() {
	if !strings.HasPrefix(a.Taxonomy, `"d__`) {
		return
	}
	for _, part := range strings.Split(strings.Trim(a.Taxonomy, `"`), ";") {
		for _, rp := range rankPrefixes {
			if strings.HasPrefix(part, rp.prefix) {
				rp.set(a, part[len(rp.prefix):])
				break
			}
		}
	}
}

// Lineage returns the populated ranks in kingdom-to-species order.
func (a *SpeciesAnnotation) Lineage() []string {
	var out []string
	for _, v := range []string{a.Kingdom, a.Phylum, a.Class, a.Order, a.Family, a.Genus, a.Species} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LowestRank returns the deepest populated taxonomic rank and its name.
// An annotation with no lineage falls back to ("Unknown", Impression), or
// ("Unknown", "Unknown") when the impression is empty too.
func (a *SpeciesAnnotation) LowestRank() (rank, name string) {
	switch {
	case a.Species != "":
		return "Species", a.Species
	case a.Genus != "":
		return "Genus", a.Genus
	case a.Family != "":
		return "Family", a.Family
	case a.Order != "":
		return "Order", a.Order
	case a.Class != "":
		return "Class", a.Class
	case a.Phylum != "":
		return "Phylum", a.Phylum
	case a.Kingdom != "":
		return "Kingdom", a.Kingdom
	}
	if a.Impression != "" {
		return "Unknown", a.Impression
	}
	return "Unknown", "Unknown"
}
