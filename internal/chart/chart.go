// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

// Package chart builds the go-echarts charts embedded in the HTML report.
// Data shaping (grouping, sorting, percentage prep) is kept in plain helpers
// so it can be tested without rendering.
package chart

import "strings"

// Default canvas size for every chart in the report.
const (
	defaultWidth  = "900px"
	defaultHeight = "500px"
)

// Confidence levels in display order. Levels outside this set sort last.
var confidenceLevels = []string{"high", "moderate", "low"}

// ConfidenceColor maps a confidence level to its report color.
func ConfidenceColor(level string) string {
	switch strings.ToLower(level) {
	case "high":
		return "green"
	case "moderate":
		return "orange"
	case "low":
		return "red"
	default:
		return "gray"
	}
}

// ConfidenceLabel normalizes a confidence level for legend display.
func ConfidenceLabel(level string) string {
	switch strings.ToLower(level) {
	case "high":
		return "High"
	case "moderate":
		return "Moderate"
	case "low":
		return "Low"
	default:
		if level == "" {
			return "Unknown"
		}
		return level
	}
}

// truncateLabel shortens very long names so pie and axis labels stay legible.
// Truncation counts runes so multi-byte names are never split mid-character.
func truncateLabel(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
