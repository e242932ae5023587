// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"fmt"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// Weekdays is the display order for day-of-week charts.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// AppointmentAnalysis renders the appointment section from the appointment
// distribution and emergency visit marts.
func AppointmentAnalysis(distribution, emergency *frame.Frame) (*Report, error) {
	typeChart, typeTable, err := appointmentTypes(distribution)
	if err != nil {
		return nil, fmt.Errorf("appointment distribution: %w", err)
	}
	dayChart, dayTable, err := emergencyVisits(emergency)
	if err != nil {
		return nil, fmt.Errorf("emergency visits: %w", err)
	}

	return newReport(SectionAppointments,
		chartPanel("1. Appointment types across age groups", typeChart),
		tablePanel("Appointment types breakdown", typeTable),
		chartPanel("2. Emergency visits by week days", dayChart),
		tablePanel("Emergency visits by day", dayTable),
	), nil
}

func appointmentTypes(f *frame.Frame) (*ChartSpec, *frame.Frame, error) {
	data, err := frame.Select(f, "age_group", "appointment_type", "total")
	if err != nil {
		return nil, nil, err
	}

	y := field("total", Quantitative, "Total Appointments")
	y.Aggregate = "sum"
	chart := &ChartSpec{
		Width: 700,
		Data:  inline(data),
		Mark:  &Mark{Type: "bar"},
		Encoding: &Encoding{
			X:     tilted(field("age_group", Nominal, "Age Group")),
			Y:     y,
			Color: field("appointment_type", Nominal, "Appointment Type"),
			Tooltip: []FieldDef{
				{Field: "age_group", Type: Nominal},
				{Field: "appointment_type", Type: Nominal},
				{Field: "total", Type: Quantitative},
			},
		},
	}

	table, err := breakdown(data, "appointment_type")
	if err != nil {
		return nil, nil, err
	}
	return chart, table, nil
}

// breakdown pivots age_group x category totals, adds a Total column and
// orders the groups by it, largest first.
func breakdown(f *frame.Frame, category string) (*frame.Frame, error) {
	p, err := frame.Pivot(f, "age_group", category, "total")
	if err != nil {
		return nil, err
	}
	// Only the category columns count; age_group may itself be numeric.
	if p, err = frame.AddTotalColumn(p, "Total", p.ColumnNames()[1:]...); err != nil {
		return nil, err
	}
	return frame.SortBy(p, "Total", true)
}

func emergencyVisits(f *frame.Frame) (*ChartSpec, *frame.Frame, error) {
	data, err := frame.Select(f, "day_of_week", "emergency_visits")
	if err != nil {
		return nil, nil, err
	}
	if data, err = frame.SortByOrder(data, "day_of_week", Weekdays); err != nil {
		return nil, nil, err
	}

	x := tilted(field("day_of_week", Nominal, "Day of Week"))
	x.Sort = SortOrder(Weekdays...)
	y := field("emergency_visits", Quantitative, "Emergency Visits")

	chart := &ChartSpec{
		Width: 600,
		Data:  inline(data),
		Layer: []ChartSpec{
			{Mark: &Mark{Type: "bar", Color: "#E15759"}, Encoding: &Encoding{X: x, Y: y}},
			labelLayer(Encoding{X: x, Y: y, Text: field("emergency_visits", Quantitative, "")}),
		},
	}
	return chart, data, nil
}
