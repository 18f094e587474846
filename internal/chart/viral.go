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

// FamilyBar builds the viral family distribution bar chart. Families sort by
// count descending; each confidence level is its own series so the legend
// doubles as a color key (High green, Moderate orange, Low red).
func FamilyBar(families []dataset.ViralFamily) *charts.Bar {
	names, groups := familyBarSeries(families)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: defaultHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Viral Families Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Viral Family", AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	bar.SetXAxis(names)
	for _, g := range groups {
		data := make([]opts.BarData, len(g.values))
		for i, v := range g.values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(ConfidenceLabel(g.level), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "confidence"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ConfidenceColor(g.level)}),
		)
	}
	return bar
}

// FamilyTreemap builds the family-to-genus treemap weighted by count.
func FamilyTreemap(families []dataset.ViralFamily) *charts.TreeMap {
	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Viral Taxonomy Treemap"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	tm.AddSeries("viral families", treemapNodes(families)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}))
	return tm
}

// familyGroup is one confidence level with values aligned to the family axis.
type familyGroup struct {
	level  string
	values []int
}

// familyBarSeries sorts families by count descending and splits them into
// per-confidence series. Each family has a non-zero value in exactly one
// series; the series stack, so every bar still reads as a single block.
func familyBarSeries(families []dataset.ViralFamily) ([]string, []familyGroup) {
	sorted := make([]dataset.ViralFamily, len(families))
	copy(sorted, families)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	names := make([]string, len(sorted))
	for i, f := range sorted {
		names[i] = f.Name
	}

	levels := presentLevels(sorted)
	groups := make([]familyGroup, 0, len(levels))
	for _, level := range levels {
		g := familyGroup{level: level, values: make([]int, len(sorted))}
		for i, f := range sorted {
			if strings.ToLower(f.Confidence) == level {
				g.values[i] = f.Count
			}
		}
		groups = append(groups, g)
	}
	return names, groups
}

// presentLevels returns the confidence levels that occur in families, in
// display order with unknown levels last.
func presentLevels(families []dataset.ViralFamily) []string {
	present := make(map[string]bool)
	var extras []string
	for _, f := range families {
		level := strings.ToLower(f.Confidence)
		if !present[level] && !isKnownLevel(level) {
			extras = append(extras, level)
		}
		present[level] = true
	}
	sort.Strings(extras)

	var out []string
	for _, level := range append(append([]string{}, confidenceLevels...), extras...) {
		if present[level] {
			out = append(out, level)
		}
	}
	return out
}

// treemapNodes converts families and their genera into treemap nodes.
func treemapNodes(families []dataset.ViralFamily) []opts.TreeMapNode {
	nodes := make([]opts.TreeMapNode, 0, len(families))
	for _, f := range families {
		node := opts.TreeMapNode{Name: f.Name, Value: f.Count}
		for _, g := range f.Genera {
			node.Children = append(node.Children, opts.TreeMapNode{Name: g.Name, Value: g.Count})
		}
		nodes = append(nodes, node)
	}
	return nodes
}
