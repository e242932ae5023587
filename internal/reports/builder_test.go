// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/gaco/portrait-data-engineer-test/internal/config"
	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/warehouse"
)

type fakeLoader struct {
	mu     sync.Mutex
	frames map[string]*frame.Frame
	failOn string
	loaded []string
}

func (l *fakeLoader) Load(_ context.Context, query string) (*frame.Frame, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = append(l.loaded, query)
	if query == l.failOn {
		return nil, errors.New("connection refused")
	}
	f, ok := l.frames[query]
	if !ok {
		return nil, fmt.Errorf("no fixture for %q", query)
	}
	return f.Clone(), nil
}

func testQueries() warehouse.Queries {
	return warehouse.NewQueries(config.MartsConfig{
		Schema:                   "analytics_marts",
		PatientDistribution:      "patient_distribution_by_age_group",
		AppointmentFrequency:     "appointment_frequency_by_patient_type",
		AppointmentDistribution:  "appointment_distribution_by_age_group",
		EmergencyVisits:          "emergency_visits_by_day",
		PrescriptionDistribution: "prescription_distribution_by_age_group",
		PrescriptionCorrelation:  "prescription_appointment_correlation",
		PrescriptionTrend:        "prescription_frequency_trend",
	})
}

func newTestBuilder() (*Builder, *fakeLoader) {
	q := testQueries()
	l := &fakeLoader{frames: map[string]*frame.Frame{
		q.PatientDistribution():      patientDistributionFixture(),
		q.AppointmentFrequency():     appointmentFrequencyFixture(),
		q.AppointmentDistribution():  appointmentDistributionFixture(),
		q.EmergencyVisits():          emergencyVisitsFixture(),
		q.PrescriptionDistribution(): prescriptionDistributionFixture(),
		q.PrescriptionCorrelation():  prescriptionCorrelationFixture(),
		q.PrescriptionTrend():        prescriptionTrendFixture(),
	}}
	return NewBuilder(l, q), l
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		section string
		queries int
		panels  int
	}{
		{SectionPatients, 2, 4},
		{SectionAppointments, 2, 4},
		{SectionPrescriptions, 3, 4},
		{SectionConclusions, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			t.Parallel()

			b, l := newTestBuilder()
			r, err := b.Build(context.Background(), tt.section)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if r.Section.ID != tt.section {
				t.Errorf("Section = %+v", r.Section)
			}
			if len(r.Panels) != tt.panels {
				t.Errorf("panels = %d, want %d", len(r.Panels), tt.panels)
			}
			if len(l.loaded) != tt.queries {
				t.Errorf("queries = %v, want %d", l.loaded, tt.queries)
			}
		})
	}
}

func TestBuilder_UnknownSection(t *testing.T) {
	t.Parallel()

	b, l := newTestBuilder()
	if _, err := b.Build(context.Background(), "billing"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Build() error = %v, want ErrUnknownSection", err)
	}
	if len(l.loaded) != 0 {
		t.Errorf("unknown section issued queries: %v", l.loaded)
	}
}

func TestBuilder_QueryFailureAbortsSectionOnly(t *testing.T) {
	t.Parallel()

	b, l := newTestBuilder()
	l.failOn = testQueries().EmergencyVisits()

	_, err := b.Build(context.Background(), SectionAppointments)
	if err == nil || !strings.HasPrefix(err.Error(), "section appointments: ") {
		t.Fatalf("Build() error = %v, want it wrapped with the section", err)
	}

	if _, err := b.Build(context.Background(), SectionPrescriptions); err != nil {
		t.Errorf("other sections should still build, got %v", err)
	}
}

func TestBuilder_TransformFailure(t *testing.T) {
	t.Parallel()

	b, l := newTestBuilder()
	l.frames[testQueries().PatientDistribution()] = frame.New([]frame.Column{{Name: "bucket", Type: frame.String}})

	_, err := b.Build(context.Background(), SectionPatients)
	if !errors.Is(err, frame.ErrMissingColumn) {
		t.Errorf("Build() error = %v, want ErrMissingColumn", err)
	}
}
