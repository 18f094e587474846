// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package dataset defines the core domain types for pathreport.
package dataset

// ResistanceMechanism is a single resistance mechanism with its occurrence count.
type ResistanceMechanism struct {
	Name  string
	Count int
}

// AMRClass is an antibiotic class from the AMR annotation summary, with the
// resistance mechanisms observed for it.
type AMRClass struct {
	Name       string
	Count      int
	Mechanisms []ResistanceMechanism
}

// Strain is a single strain within a pathogen species.
type Strain struct {
	Name  string
	Reads int
}

// PathogenSpecies is one species from the pathogen map with its read total
// and per-strain breakdown.
type PathogenSpecies struct {
	Name       string
	TotalReads int
	Strains    []Strain
}

// ViralGenus is a genus entry under a viral family.
type ViralGenus struct {
	Name  string
	Count int
}

// ViralFamily is a family entry from the structured viral summary.
type ViralFamily struct {
	Name       string
	Confidence string // "High", "Moderate", "Low"
	Count      int
	Genera     []ViralGenus
}

// RunInfo holds optional sequencing-run metadata read from run_info.toml.
// All fields are free-form and appear verbatim in the report header.
type RunInfo struct {
	Sample   string `toml:"sample"`
	Platform string `toml:"platform"`
	RunDate  string `toml:"run_date"`
	Pipeline string `toml:"pipeline"`
	Notes    string `toml:"notes"`
}

// Bundle aggregates every parsed dataset for one report run. Parsers fill in
// their slice; report sections consume the whole bundle.
type Bundle struct {
	AMR       []AMRClass
	Pathogens []PathogenSpecies
	Species   []SpeciesAnnotation
	Viral     []ViralFamily
	Run       *RunInfo // nil when run_info.toml is absent
}
