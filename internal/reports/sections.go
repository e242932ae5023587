// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned for a section ID not in Sections.
var ErrUnknownSection = errors.New("unknown section")

// Section IDs.
const (
	SectionPatients      = "patients"
	SectionAppointments  = "appointments"
	SectionPrescriptions = "prescriptions"
	SectionConclusions   = "conclusions"
)

// DashboardTitle heads every section page.
const DashboardTitle = "Healthcare Analytics Dashboard"

// Section is one navigation entry of the dashboard.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var sections = []Section{
	{ID: SectionPatients, Title: "Patient Analysis"},
	{ID: SectionAppointments, Title: "Appointment Analysis"},
	{ID: SectionPrescriptions, Title: "Prescription Analysis"},
	{ID: SectionConclusions, Title: "Conclusions"},
}

// Sections returns the dashboard sections in navigation order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Lookup returns the section with the given ID.
func Lookup(id string) (Section, error) {
	for _, s := range sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}
