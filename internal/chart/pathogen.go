// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pathreport/internal/dataset"
)

// maxStrainLabel is the longest strain name shown before truncation; read
// headers in the source data can run to hundreds of characters.
const maxStrainLabel = 50

// StrainPie builds the pie chart of strain read counts across all pathogen
// species. top caps the number of slices (0 = all).
func StrainPie(pathogens []dataset.PathogenSpecies, top int) *charts.Pie {
	data := strainSlices(pathogens, top)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: defaultHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Strain Distribution per Species"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "Strain: {b}<br/>Reads: {c}<br/>Percentage: {d}%",
		}),
		// The legend would dwarf the chart with many strains.
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	pie.AddSeries("strains", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "inside",
			Formatter: "{d}%",
		}))
	return pie
}

// strainSlices flattens strains across species, species ordered by total
// reads descending and strains by read count descending within each.
func strainSlices(pathogens []dataset.PathogenSpecies, top int) []opts.PieData {
	sorted := make([]dataset.PathogenSpecies, len(pathogens))
	copy(sorted, pathogens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalReads > sorted[j].TotalReads
	})

	var data []opts.PieData
	for _, p := range sorted {
		strains := make([]dataset.Strain, len(p.Strains))
		copy(strains, p.Strains)
		sort.SliceStable(strains, func(i, j int) bool {
			return strains[i].Reads > strains[j].Reads
		})
		for _, s := range strains {
			data = append(data, opts.PieData{
				Name:  truncateLabel(s.Name, maxStrainLabel),
				Value: s.Reads,
			})
		}
	}

	if top > 0 && len(data) > top {
		data = data[:top]
	}
	return data
}
