// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pathreport/internal/dataset"
)

// nameCount is a label with its occurrence count.
type nameCount struct {
	Name  string
	Count int
}

// LowestRankPie builds the donut chart of lowest-rank classification counts
// across all species annotations.
func LowestRankPie(anns []dataset.SpeciesAnnotation) *charts.Pie {
	counts := lowestRankCounts(anns)

	data := make([]opts.PieData, len(counts))
	for i, nc := range counts {
		data[i] = opts.PieData{Name: nc.Name, Value: nc.Count}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: defaultHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Lowest Taxonomy Classifications"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	pie.AddSeries("classifications", data).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
		)
	return pie
}

// TaxonomySunburst builds the kingdom-to-species sunburst, each ring one
// taxonomic rank, leaf size the number of annotations sharing that lineage.
func TaxonomySunburst(anns []dataset.SpeciesAnnotation) *charts.Sunburst {
	sb := charts.NewSunburst()
	sb.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Taxonomic Lineage Overview"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	sb.AddSeries("taxonomy", sunburstData(anns))
	return sb
}

// SimilarityScatter plots each annotation as similarity (x) against the
// proportion of genome aligned (y), one series per confidence level.
func SimilarityScatter(anns []dataset.SpeciesAnnotation) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: defaultHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Similarity vs Genome Coverage"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Similarity"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Proportion of Genome Aligned"}),
	)

	for _, group := range scatterGroups(anns) {
		data := make([]opts.ScatterData, len(group.anns))
		for i, a := range group.anns {
			data[i] = opts.ScatterData{
				Name:  a.ID,
				Value: []interface{}{a.Similarity, a.ProportionGenomeAligned},
			}
		}
		sc.AddSeries(ConfidenceLabel(group.level), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ConfidenceColor(group.level)}))
	}
	return sc
}

// lowestRankCounts counts annotations per lowest-rank name, sorted by count
// descending with name as tiebreaker.
func lowestRankCounts(anns []dataset.SpeciesAnnotation) []nameCount {
	counts := make(map[string]int)
	for _, a := range anns {
		_, name := a.LowestRank()
		counts[name]++
	}

	out := make([]nameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, nameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// sunburstNode is the intermediate tree used to build sunburst data.
type sunburstNode struct {
	count    int
	children map[string]*sunburstNode
}

// sunburstData folds annotation lineages into nested sunburst rings.
// Annotations without a lineage land in a single ring under their
// lowest-rank fallback name.
func sunburstData(anns []dataset.SpeciesAnnotation) []opts.SunBurstData {
	root := &sunburstNode{children: make(map[string]*sunburstNode)}
	for _, a := range anns {
		path := a.Lineage()
		if len(path) == 0 {
			_, name := a.LowestRank()
			path = []string{name}
		}
		node := root
		for _, part := range path {
			child := node.children[part]
			if child == nil {
				child = &sunburstNode{children: make(map[string]*sunburstNode)}
				node.children[part] = child
			}
			node = child
		}
		node.count++
	}
	return sunburstChildren(root)
}

// sunburstChildren converts a node's children to sorted SunBurstData. Only
// leaves carry a value; inner ring sizes derive from their children.
func sunburstChildren(node *sunburstNode) []opts.SunBurstData {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]opts.SunBurstData, 0, len(names))
	for _, name := range names {
		child := node.children[name]
		data := opts.SunBurstData{Name: name}
		if len(child.children) == 0 {
			data.Value = float64(child.count)
		} else {
			kids := sunburstChildren(child)
			if child.count > 0 {
				// Annotations classified exactly at this rank get their own
				// slice alongside the deeper classifications.
				kids = append(kids, opts.SunBurstData{Name: name, Value: float64(child.count)})
			}
			data.Children = make([]*opts.SunBurstData, len(kids))
			for i := range kids {
				data.Children[i] = &kids[i]
			}
		}
		out = append(out, data)
	}
	return out
}

// scatterGroup is one confidence level with its annotations.
type scatterGroup struct {
	level string
	anns  []dataset.SpeciesAnnotation
}

// scatterGroups splits annotations by confidence level in display order;
// unknown levels come last.
func scatterGroups(anns []dataset.SpeciesAnnotation) []scatterGroup {
	byLevel := make(map[string][]dataset.SpeciesAnnotation)
	var extras []string
	for _, a := range anns {
		level := strings.ToLower(a.ConfidenceLevel)
		if _, known := byLevel[level]; !known && !isKnownLevel(level) {
			extras = append(extras, level)
		}
		byLevel[level] = append(byLevel[level], a)
	}
	sort.Strings(extras)

	var out []scatterGroup
	for _, level := range append(append([]string{}, confidenceLevels...), extras...) {
		if group, ok := byLevel[level]; ok {
			out = append(out, scatterGroup{level: level, anns: group})
		}
	}
	return out
}

func isKnownLevel(level string) bool {
	for _, l := range confidenceLevels {
		if l == level {
			return true
		}
	}
	return false
}
