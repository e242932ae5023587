// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"fmt"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// PatientAnalysis renders the patient section from the patient
// distribution and appointment frequency marts.
func PatientAnalysis(distribution, frequency *frame.Frame) (*Report, error) {
	ageChart, ageTable, err := patientDistribution(distribution)
	if err != nil {
		return nil, fmt.Errorf("patient distribution: %w", err)
	}
	freqChart, freqTable, err := appointmentFrequency(frequency)
	if err != nil {
		return nil, fmt.Errorf("appointment frequency: %w", err)
	}

	return newReport(SectionPatients,
		chartPanel("1. Patient distribution across age groups", ageChart),
		tablePanel("Patients by age group", ageTable),
		chartPanel("2. Appointment frequency by patient types", freqChart),
		tablePanel("Appointment Breakdown", freqTable),
	), nil
}

func patientDistribution(f *frame.Frame) (*ChartSpec, *frame.Frame, error) {
	data, err := frame.Select(f, "age_group", "num_patients")
	if err != nil {
		return nil, nil, err
	}

	x := tilted(field("age_group", Nominal, "Age Group"))
	x.Sort = NoSort()
	y := field("num_patients", Quantitative, "Number of Patients")

	chart := &ChartSpec{
		Width: 600,
		Data:  inline(data),
		Layer: []ChartSpec{
			{Mark: &Mark{Type: "bar", Color: "green"}, Encoding: &Encoding{X: x, Y: y}},
			labelLayer(Encoding{X: x, Y: y, Text: field("num_patients", Quantitative, "")}),
		},
	}
	return chart, data, nil
}

// appointmentFrequency renders the inpatient/outpatient split as a donut
// with percentages, plus a Type/Total/% table ordered by Total.
func appointmentFrequency(f *frame.Frame) (*ChartSpec, *frame.Frame, error) {
	base, err := frame.Select(f, "patient_type", "total_appointments")
	if err != nil {
		return nil, nil, err
	}
	shares, err := frame.ShareOfTotal(base, "total_appointments", "percentage")
	if err != nil {
		return nil, nil, err
	}

	chart := &ChartSpec{
		Data: inline(shares),
		Mark: &Mark{Type: "arc", InnerRadius: 50},
		Encoding: &Encoding{
			Theta: field("total_appointments", Quantitative, ""),
			Color: field("patient_type", Nominal, "Patient Type"),
			Tooltip: []FieldDef{
				{Field: "patient_type", Type: Nominal},
				{Field: "total_appointments", Type: Quantitative},
				{Field: "percentage", Type: Quantitative, Format: ".1%"},
			},
		},
	}

	table, err := frame.FormatPercent(shares, "percentage", "%", 1)
	if err != nil {
		return nil, nil, err
	}
	if table, err = frame.Select(table, "patient_type", "total_appointments", "%"); err != nil {
		return nil, nil, err
	}
	if table, err = frame.Rename(table, map[string]string{"patient_type": "Type", "total_appointments": "Total"}); err != nil {
		return nil, nil, err
	}
	if table, err = frame.SortBy(table, "Total", true); err != nil {
		return nil, nil, err
	}
	return chart, table, nil
}
