// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pathreport/internal/dataset"
)

// ClassBar builds the bar chart of antibiotic resistance class counts, one
// bar per class with the count printed above it.
func ClassBar(classes []dataset.AMRClass) *charts.Bar {
	names, data := classAxis(classes)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: defaultHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Antibiotic Resistance Classes"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Occurrences"}),
	)
	bar.SetXAxis(names).
		AddSeries("Occurrences", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// MechanismBar builds the stacked bar chart of resistance mechanisms: one
// bar per mechanism, stacked by the antibiotic class it was observed for.
func MechanismBar(classes []dataset.AMRClass) *charts.Bar {
	mechs, classNames, values := mechanismMatrix(classes)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: defaultWidth, Height: defaultHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Resistance Mechanisms by Antibiotic Class"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Resistance Mechanism", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	bar.SetXAxis(mechs)
	for _, class := range classNames {
		data := make([]opts.BarData, len(mechs))
		for i, v := range values[class] {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(class, data, charts.WithBarChartOpts(opts.BarChart{Stack: "class"}))
	}
	return bar
}

// classAxis shapes classes into X-axis labels and bar values, input order.
func classAxis(classes []dataset.AMRClass) ([]string, []opts.BarData) {
	names := make([]string, len(classes))
	data := make([]opts.BarData, len(classes))
	for i, c := range classes {
		names[i] = c.Name
		data[i] = opts.BarData{Value: c.Count}
	}
	return names, data
}

// mechanismMatrix aggregates mechanism counts per (mechanism, class) pair.
// Mechanisms are sorted for a stable X axis; class order follows the input.
func mechanismMatrix(classes []dataset.AMRClass) (mechs, classNames []string, values map[string][]int) {
	counts := make(map[string]map[string]int) // mechanism -> class -> count
	for _, c := range classes {
		for _, m := range c.Mechanisms {
			if counts[m.Name] == nil {
				counts[m.Name] = make(map[string]int)
			}
			counts[m.Name][c.Name] += m.Count
		}
	}

	mechs = make([]string, 0, len(counts))
	for name := range counts {
		mechs = append(mechs, name)
	}
	sort.Strings(mechs)

	seen := make(map[string]bool)
	for _, c := range classes {
		if len(c.Mechanisms) == 0 || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		classNames = append(classNames, c.Name)
	}

	values = make(map[string][]int, len(classNames))
	for _, class := range classNames {
		row := make([]int, len(mechs))
		for i, mech := range mechs {
			row[i] = counts[mech][class]
		}
		values[class] = row
	}
	return mechs, classNames, values
}
