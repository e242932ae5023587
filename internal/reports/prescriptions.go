// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"fmt"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// PrescriptionAnalysis renders the prescription section from the
// category distribution, correlation and trend marts.
func PrescriptionAnalysis(distribution, correlation, trend *frame.Frame) (*Report, error) {
	catChart, catTable, err := medicationCategories(distribution)
	if err != nil {
		return nil, fmt.Errorf("prescription distribution: %w", err)
	}
	corrChart, err := prescriptionCorrelation(correlation)
	if err != nil {
		return nil, fmt.Errorf("prescription correlation: %w", err)
	}
	trendChart, err := prescriptionTrend(trend)
	if err != nil {
		return nil, fmt.Errorf("prescription trend: %w", err)
	}

	return newReport(SectionPrescriptions,
		chartPanel("1. Medication categories across age groups", catChart),
		tablePanel("Medication Category Breakdown", catTable),
		chartPanel("2. Correlation between prescription frequency and appointment frequency", corrChart),
		chartPanel("3. Trend of prescription frequency over time", trendChart),
	), nil
}

func medicationCategories(f *frame.Frame) (*ChartSpec, *frame.Frame, error) {
	data, err := frame.Select(f, "age_group", "category", "total")
	if err != nil {
		return nil, nil, err
	}

	x := tilted(field("age_group", Nominal, "Age Group"))
	x.Sort = NoSort()
	y := field("total", Quantitative, "Total Prescriptions")
	y.Aggregate = "sum"

	chart := &ChartSpec{
		Width: 700,
		Data:  inline(data),
		Mark:  &Mark{Type: "bar"},
		Encoding: &Encoding{
			X:     x,
			Y:     y,
			Color: field("category", Nominal, "Category"),
		},
	}

	table, err := breakdown(data, "category")
	if err != nil {
		return nil, nil, err
	}
	if table, err = frame.AppendTotalsRow(table, "age_group", "Total"); err != nil {
		return nil, nil, err
	}
	return chart, table, nil
}

var metricLabels = map[string]string{
	"avg_appointments":  "Avg Appointments",
	"avg_prescriptions": "Avg Prescriptions",
}

// prescriptionCorrelation draws both averages side by side per bucket.
func prescriptionCorrelation(f *frame.Frame) (*ChartSpec, error) {
	long, err := frame.Melt(f,
		[]string{"prescription_frequency_bucket"},
		[]string{"avg_appointments", "avg_prescriptions"},
		"Metric", "Value")
	if err != nil {
		return nil, err
	}
	if long, err = frame.ReplaceValues(long, "Metric", metricLabels); err != nil {
		return nil, err
	}

	x := tilted(field("prescription_frequency_bucket", Nominal, "Prescription Frequency Bucket"))
	offset := field("Metric", Nominal, "")
	y := field("Value", Quantitative, "Average Count")

	return &ChartSpec{
		Data: inline(long),
		Layer: []ChartSpec{
			{
				Mark: &Mark{Type: "bar", Width: 30},
				Encoding: &Encoding{
					X:       x,
					Y:       y,
					Color:   field("Metric", Nominal, "Metric"),
					XOffset: offset,
					Tooltip: []FieldDef{
						{Field: "prescription_frequency_bucket", Type: Nominal, Title: "Bucket"},
						{Field: "Metric", Type: Nominal, Title: "Metric"},
						{Field: "Value", Type: Quantitative, Title: "Avg", Format: ".2f"},
					},
				},
			},
			{
				Mark: &Mark{Type: "text", Dy: -10, Color: "black", FontSize: 11},
				Encoding: &Encoding{
					X:       field("prescription_frequency_bucket", Nominal, ""),
					XOffset: offset,
					Y:       field("Value", Quantitative, ""),
					Text:    &FieldDef{Field: "Value", Type: Quantitative, Format: ".2f"},
				},
			},
		},
	}, nil
}

// prescriptionTrend plots first-time against repeat prescriptions per month.
func prescriptionTrend(f *frame.Frame) (*ChartSpec, error) {
	data, err := frame.SynthesizeMonthDate(f, "year", "month", "date")
	if err != nil {
		return nil, err
	}
	if _, err := frame.Select(data, "prescription_frequency", "total"); err != nil {
		return nil, err
	}

	x := field("date", Temporal, "Month")
	x.Axis = &Axis{Format: "%b %Y", LabelAngle: -45}

	return &ChartSpec{
		Width:  800,
		Height: 400,
		Data:   inline(data),
		Layer: []ChartSpec{
			{
				Mark: &Mark{Type: "line", Point: true},
				Encoding: &Encoding{
					X:     x,
					Y:     field("total", Quantitative, "Total Prescriptions"),
					Color: field("prescription_frequency", Nominal, "Prescription Frequency"),
					Tooltip: []FieldDef{
						{Field: "year", Type: Quantitative},
						{Field: "month", Type: Quantitative},
						{Field: "prescription_frequency", Type: Nominal},
						{Field: "total", Type: Quantitative},
					},
				},
			},
			{
				Mark: &Mark{Type: "text", Align: "left", Baseline: "middle", Dx: 5, Dy: -10, FontSize: 12},
				Encoding: &Encoding{
					X:      field("date", Temporal, ""),
					Y:      field("total", Quantitative, ""),
					Detail: field("prescription_frequency", Nominal, ""),
					Text:   &FieldDef{Field: "total", Type: Quantitative, Format: ".0f"},
				},
			},
		},
	}, nil
}
