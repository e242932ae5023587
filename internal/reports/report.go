// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import "github.com/gaco/portrait-data-engineer-test/internal/frame"

// PanelKind tells the renderer how to draw a panel.
type PanelKind string

const (
	PanelChart    PanelKind = "chart"
	PanelTable    PanelKind = "table"
	PanelMarkdown PanelKind = "markdown"
)

// Report is the full set of render instructions for one section.
type Report struct {
	Section Section `json:"section"`
	Title   string  `json:"title"`
	Panels  []Panel `json:"panels"`
}

// Panel is one chart, table or block of text. Exactly one of Chart, Table
// and Markdown is set, matching Kind.
type Panel struct {
	Kind     PanelKind    `json:"kind"`
	Title    string       `json:"title,omitempty"`
	Chart    *ChartSpec   `json:"chart,omitempty"`
	Table    *frame.Frame `json:"table,omitempty"`
	Markdown string       `json:"markdown,omitempty"`
}

func newReport(id string, panels ...Panel) *Report {
	sec, _ := Lookup(id)
	return &Report{Section: sec, Title: DashboardTitle, Panels: panels}
}

func chartPanel(title string, c *ChartSpec) Panel {
	if c.Schema == "" {
		c.Schema = VegaLiteSchema
	}
	return Panel{Kind: PanelChart, Title: title, Chart: c}
}

func tablePanel(title string, f *frame.Frame) Panel {
	return Panel{Kind: PanelTable, Title: title, Table: f}
}

func markdownPanel(title, text string) Panel {
	return Panel{Kind: PanelMarkdown, Title: title, Markdown: text}
}
