// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"github.com/goccy/go-json"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// VegaLiteSchema is the schema URL stamped on every top-level chart.
const VegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// Field types.
const (
	Nominal      = "nominal"
	Quantitative = "quantitative"
	Temporal     = "temporal"
)

// ChartSpec is the subset of a Vega-Lite specification the dashboard uses.
// A spec either has a Mark and Encoding or a list of Layers sharing Data.
type ChartSpec struct {
	Schema   string      `json:"$schema,omitempty"`
	Title    string      `json:"title,omitempty"`
	Width    int         `json:"width,omitempty"`
	Height   int         `json:"height,omitempty"`
	Data     *Data       `json:"data,omitempty"`
	Mark     *Mark       `json:"mark,omitempty"`
	Encoding *Encoding   `json:"encoding,omitempty"`
	Layer    []ChartSpec `json:"layer,omitempty"`
}

// Data holds inline rows.
type Data struct {
	Values []map[string]any `json:"values"`
}

// Mark is the graphical mark and its static properties.
type Mark struct {
	Type        string  `json:"type"`
	Color       string  `json:"color,omitempty"`
	InnerRadius float64 `json:"innerRadius,omitempty"`
	Point       bool    `json:"point,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Align       string  `json:"align,omitempty"`
	Baseline    string  `json:"baseline,omitempty"`
	Dx          float64 `json:"dx,omitempty"`
	Dy          float64 `json:"dy,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty"`
}

// Encoding maps data fields to visual channels.
type Encoding struct {
	X       *FieldDef  `json:"x,omitempty"`
	Y       *FieldDef  `json:"y,omitempty"`
	Color   *FieldDef  `json:"color,omitempty"`
	Theta   *FieldDef  `json:"theta,omitempty"`
	XOffset *FieldDef  `json:"xOffset,omitempty"`
	Text    *FieldDef  `json:"text,omitempty"`
	Detail  *FieldDef  `json:"detail,omitempty"`
	Tooltip []FieldDef `json:"tooltip,omitempty"`
}

// FieldDef binds one field to a channel.
type FieldDef struct {
	Field     string `json:"field"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Aggregate string `json:"aggregate,omitempty"`
	Format    string `json:"format,omitempty"`
	Sort      *Sort  `json:"sort,omitempty"`
	Axis      *Axis  `json:"axis,omitempty"`
}

// Axis configures a positional axis.
type Axis struct {
	LabelAngle float64 `json:"labelAngle,omitempty"`
	Format     string  `json:"format,omitempty"`
}

// Sort is a channel's sort order: either "none" (keep data order) or an
// explicit list of values.
type Sort struct {
	None  bool
	Order []string
}

// NoSort keeps the values in data order.
func NoSort() *Sort {
	return &Sort{None: true}
}

// SortOrder sorts the values in the given order.
func SortOrder(values ...string) *Sort {
	return &Sort{Order: values}
}

// MarshalJSON encodes NoSort as null and an explicit order as an array.
func (s Sort) MarshalJSON() ([]byte, error) {
	if s.None {
		return []byte("null"), nil
	}
	return json.Marshal(s.Order)
}

func inline(f *frame.Frame) *Data {
	return &Data{Values: f.Records()}
}

func field(name, typ, title string) *FieldDef {
	return &FieldDef{Field: name, Type: typ, Title: title}
}

func tilted(fd *FieldDef) *FieldDef {
	fd.Axis = &Axis{LabelAngle: -45}
	return fd
}

// labelLayer is a text mark positioned just above each bar or point.
func labelLayer(enc Encoding) ChartSpec {
	return ChartSpec{
		Mark:     &Mark{Type: "text", Dy: -10, Color: "black"},
		Encoding: &enc,
	}
}
