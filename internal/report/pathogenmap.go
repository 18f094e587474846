// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"pathreport/internal/chart"
	"pathreport/internal/dataset"
)

func init() {
	Register(&pathogenMapSection{})
}

// pathogenMapSection reports annotated pathogen species, their strains,
// and the strain read distribution. The per-species listing covers the
// species named by the annotations; the strain pie covers every pathogen.
type pathogenMapSection struct {
	pathogens  []dataset.PathogenSpecies
	anns       []dataset.SpeciesAnnotation
	topStrains int
}

func (s *pathogenMapSection) Name() string  { return "pathogen-map" }
func (s *pathogenMapSection) Title() string { return "Pathogen Map" }
func (s *pathogenMapSection) Description() string {
	return "Pathogen species and strain-level read distribution"
}

// SetTopStrains caps the number of pie slices (0 = all).
func (s *pathogenMapSection) SetTopStrains(n int) { s.topStrains = n }

func (s *pathogenMapSection) Analyze(b *dataset.Bundle) error {
	if len(b.Pathogens) == 0 {
		return fmt.Errorf("pathogen-map: %w", ErrDataNotAvailable)
	}
	s.pathogens = b.Pathogens
	s.anns = b.Species
	return nil
}

func (s *pathogenMapSection) Blocks() []Block {
	return []Block{
		speciesDetails(s.pathogens, s.anns),
		chartBlock(chart.StrainPie(s.pathogens, s.topStrains)),
	}
}

// speciesEntry is the template model for one pathogen species.
type speciesEntry struct {
	Name       string
	TotalReads int
	Strains    []dataset.Strain
	Annotation *dataset.SpeciesAnnotation
	Confidence string
	Color      string
}

var (
	speciesDetailsOnce sync.Once
	speciesDetailsTmpl *template.Template
)

const speciesDetailsText = `{{range .}}<details class="species">
<summary><strong>{{.Name}}</strong> &ndash; {{.TotalReads}} reads{{if .Annotation}} <span class="badge" style="background:{{.Color}}">{{.Confidence}} confidence</span>{{end}}</summary>
{{if .Annotation}}<p class="annotation">{{.Annotation.Taxonomy}}<br>
Similarity: {{printf "%.2f" .Annotation.Similarity}} &middot; Genome aligned: {{printf "%.2f" .Annotation.ProportionGenomeAligned}}{{if .Annotation.Impression}}<br>
{{.Annotation.Impression}}{{end}}</p>
{{end}}<ul>
{{range .Strains}}<li>{{.Name}} ({{.Reads}} reads)</li>
{{end}}</ul>
</details>
{{end}}`

// speciesDetails renders the expandable per-species listing. The listing is
// driven by the species annotations: each distinct lowest-rank name (first
// occurrence wins) is looked up in the pathogen map case-insensitively, and
// names with no pathogen entry are skipped with a debug log. Listed species
// sort by total reads descending, strains by read count within each.
func speciesDetails(pathogens []dataset.PathogenSpecies, anns []dataset.SpeciesAnnotation) Block {
	speciesDetailsOnce.Do(func() {
		speciesDetailsTmpl = template.Must(template.New("species-details").Parse(speciesDetailsText))
	})

	seen := make(map[string]bool)
	var entries []speciesEntry
	for i := range anns {
		_, name := anns[i].LowestRank()
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		p := matchPathogen(name, pathogens)
		if p == nil {
			slog.Debug("no pathogen map entry for annotation", "name", name)
			continue
		}

		strains := make([]dataset.Strain, len(p.Strains))
		copy(strains, p.Strains)
		sort.SliceStable(strains, func(i, j int) bool {
			return strains[i].Reads > strains[j].Reads
		})

		entries = append(entries, speciesEntry{
			Name:       p.Name,
			TotalReads: p.TotalReads,
			Strains:    strains,
			Annotation: &anns[i],
			Confidence: chart.ConfidenceLabel(anns[i].ConfidenceLevel),
			Color:      chart.ConfidenceColor(anns[i].ConfidenceLevel),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalReads > entries[j].TotalReads
	})

	var buf bytes.Buffer
	if err := speciesDetailsTmpl.Execute(&buf, entries); err != nil {
		// Template and model are fixed at compile time.
		panic(err)
	}
	return Block{Element: template.HTML(buf.String())}
}

// matchPathogen finds the first pathogen map entry for the given annotation
// name, matching case-insensitively: exact name first, then the name as part
// of the pathogen's (e.g., a genus-level call against a full species name).
func matchPathogen(name string, pathogens []dataset.PathogenSpecies) *dataset.PathogenSpecies {
	for i := range pathogens {
		if strings.EqualFold(pathogens[i].Name, name) {
			return &pathogens[i]
		}
	}
	lower := strings.ToLower(name)
	for i := range pathogens {
		if strings.Contains(strings.ToLower(pathogens[i].Name), lower) {
			return &pathogens[i]
		}
	}
	return nil
}
