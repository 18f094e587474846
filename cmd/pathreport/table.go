// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables for terminal output.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if _, err := fmt.Fprintf(w, "  %s\n  %s\n", strings.Join(header, "  "), strings.Join(sep, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = t.cell(row[i], widths[i], col)
		}
		if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return nil
}

// cell colors a value and pads it. Padding uses the raw value length so ANSI
// escape codes do not skew the alignment.
func (t *Table) cell(val string, width int, col Column) string {
	display := val
	if col.Color != nil {
		display = col.Color(val)
	}
	n := width - len(val)
	if n < 0 {
		n = 0
	}
	if col.Align == AlignRight {
		return strings.Repeat(" ", n) + display
	}
	return display + strings.Repeat(" ", n)
}

// pad justifies an uncolored value to the given width.
func pad(s string, width int, align Alignment) string {
	if align == AlignRight {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}
