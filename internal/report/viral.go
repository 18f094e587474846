// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"pathreport/internal/chart"
	"pathreport/internal/dataset"
)

func init() {
	Register(&viralSection{})
}

// viralSection reports the viral family summary with its genus breakdown.
type viralSection struct {
	families []dataset.ViralFamily
}

func (s *viralSection) Name() string  { return "viral-summary" }
func (s *viralSection) Title() string { return "Viral Summary" }
func (s *viralSection) Description() string {
	return "Viral family counts with per-genus taxonomy breakdown"
}

func (s *viralSection) Analyze(b *dataset.Bundle) error {
	if len(b.Viral) == 0 {
		return fmt.Errorf("viral-summary: %w", ErrDataNotAvailable)
	}
	s.families = b.Viral
	return nil
}

func (s *viralSection) Blocks() []Block {
	return []Block{
		chartBlock(chart.FamilyBar(s.families)),
		chartBlock(chart.FamilyTreemap(s.families)),
		taxonomyDetails(s.families),
	}
}

// familyEntry is the template model for one viral family.
type familyEntry struct {
	Name       string
	Count      int
	Confidence string
	Color      string
	Genera     []dataset.ViralGenus
}

var (
	taxonomyDetailsOnce sync.Once
	taxonomyDetailsTmpl *template.Template
)

const taxonomyDetailsText = `<details class="taxonomy">
<summary>Full viral taxonomy</summary>
<pre>
{{range .}}{{.Count}} {{.Name}} [Family] <span style="color:{{.Color}}">{{.Confidence}} confidence</span>
{{range .Genera}}    {{.Count}} {{.Name}} [Genus]
{{end}}{{end}}</pre>
</details>
`

// taxonomyDetails renders the collapsible monospace family/genus listing,
// mirroring the layout of the summary file it was parsed from.
func taxonomyDetails(families []dataset.ViralFamily) Block {
	taxonomyDetailsOnce.Do(func() {
		taxonomyDetailsTmpl = template.Must(template.New("taxonomy-details").Parse(taxonomyDetailsText))
	})

	entries := make([]familyEntry, 0, len(families))
	for _, f := range families {
		entries = append(entries, familyEntry{
			Name:       f.Name,
			Count:      f.Count,
			Confidence: chart.ConfidenceLabel(f.Confidence),
			Color:      chart.ConfidenceColor(f.Confidence),
			Genera:     f.Genera,
		})
	}

	var buf bytes.Buffer
	if err := taxonomyDetailsTmpl.Execute(&buf, entries); err != nil {
		panic(err)
	}
	return Block{Element: template.HTML(buf.String())}
}
