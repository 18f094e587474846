// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pathreport/internal/dataset"
)

// echartsJS is the chart runtime loaded once per page.
const echartsJS = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// Options control how the report page is assembled.
type Options struct {
	Title      string   // page title and main heading
	Sections   []string // section names to render; empty means all
	TopStrains int      // pie slice cap for the strain chart (0 = all)
}

// Page is the model the page template renders.
type Page struct {
	Title       string
	ReportID    string
	GeneratedAt string
	Run         *dataset.RunInfo
	Sections    []PageSection
}

// PageSection is one rendered section with its blocks.
type PageSection struct {
	Name        string
	Title       string
	Description string
	Blocks      []Block
}

var (
	pageOnce sync.Once
	pageTmpl *template.Template
)

// Render analyzes the bundle and writes the complete HTML report to w.
// Sections whose data is missing are skipped with a warning; any other
// analysis failure aborts the render.
func Render(w io.Writer, b *dataset.Bundle, o Options) error {
	pageOnce.Do(func() {
		pageTmpl = template.Must(template.New("page").Parse(pageText))
	})

	page := Page{
		Title:       o.Title,
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05 MST"),
		Run:         b.Run,
	}

	for _, name := range ResolveSections(o.Sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		if l, ok := sec.(interface{ SetTopStrains(int) }); ok {
			l.SetTopStrains(o.TopStrains)
		}

		if err := sec.Analyze(b); err != nil {
			if errors.Is(err, ErrDataNotAvailable) {
				slog.Warn("skipping report section", "section", name, "reason", "no data")
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}

		page.Sections = append(page.Sections, PageSection{
			Name:        sec.Name(),
			Title:       sec.Title(),
			Description: sec.Description(),
			Blocks:      sec.Blocks(),
		})
	}

	if len(page.Sections) == 0 {
		return errors.New("no report sections produced output")
	}

	if err := pageTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

const pageText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="` + echartsJS + `"></script>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 0; background: #f5f6f8; color: #222; }
header { background: #1f3a5f; color: #fff; padding: 24px 40px; }
header h1 { margin: 0 0 4px; font-size: 28px; }
header .meta { margin: 0; color: #c4d0e0; font-size: 13px; }
table.runinfo { margin-top: 12px; border-collapse: collapse; font-size: 13px; }
table.runinfo td { padding: 2px 12px 2px 0; color: #e4eaf2; }
section.card { background: #fff; margin: 24px 40px; padding: 20px 28px; border-radius: 6px; box-shadow: 0 1px 3px rgba(0,0,0,0.12); }
section.card h2 { margin-top: 0; color: #1f3a5f; }
section.card p.description { color: #666; font-size: 14px; }
details { margin: 8px 0; }
details summary { cursor: pointer; }
details pre { background: #f0f2f5; padding: 12px; overflow-x: auto; font-size: 13px; }
p.annotation { color: #444; font-size: 14px; margin: 8px 0 4px 16px; }
span.badge { color: #fff; border-radius: 3px; padding: 1px 6px; font-size: 12px; }
footer { text-align: center; color: #888; font-size: 12px; padding: 16px 0 32px; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.GeneratedAt}} &middot; Report {{.ReportID}}</p>
{{with .Run}}<table class="runinfo">
{{if .Sample}}<tr><td>Sample</td><td>{{.Sample}}</td></tr>{{end}}
{{if .Platform}}<tr><td>Platform</td><td>{{.Platform}}</td></tr>{{end}}
{{if .RunDate}}<tr><td>Run date</td><td>{{.RunDate}}</td></tr>{{end}}
{{if .Pipeline}}<tr><td>Pipeline</td><td>{{.Pipeline}}</td></tr>{{end}}
{{if .Notes}}<tr><td>Notes</td><td>{{.Notes}}</td></tr>{{end}}
</table>{{end}}
</header>
{{range .Sections}}<section class="card" id="{{.Name}}">
<h2>{{.Title}}</h2>
<p class="description">{{.Description}}</p>
{{range .Blocks}}{{.Element}}
{{end}}</section>
{{end}}<footer>Report {{.ReportID}}</footer>
{{range .Sections}}{{range .Blocks}}{{.Script}}
{{end}}{{end}}</body>
</html>
`
