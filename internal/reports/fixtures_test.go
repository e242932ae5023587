// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// Mart fixtures shaped like the warehouse results.

func patientDistributionFixture() *frame.Frame {
	return frame.New(
		[]frame.Column{{Name: "age_group", Type: frame.String}, {Name: "num_patients", Type: frame.Int}},
		frame.Row{"age_group": "0-18", "num_patients": int64(120)},
		frame.Row{"age_group": "19-35", "num_patients": int64(210)},
		frame.Row{"age_group": "71+", "num_patients": int64(160)},
	)
}

func appointmentFrequencyFixture() *frame.Frame {
	return frame.New(
		[]frame.Column{{Name: "patient_type", Type: frame.String}, {Name: "total_appointments", Type: frame.Int}},
		frame.Row{"patient_type": "Inpatient", "total_appointments": int64(30)},
		frame.Row{"patient_type": "Outpatient", "total_appointments": int64(70)},
	)
}

func appointmentDistributionFixture() *frame.Frame {
	return frame.New(
		[]frame.Column{{Name: "age_group", Type: frame.String}, {Name: "appointment_type", Type: frame.String}, {Name: "total", Type: frame.Int}},
		frame.Row{"age_group": "0-18", "appointment_type": "Checkup", "total": int64(5)},
		frame.Row{"age_group": "0-18", "appointment_type": "Emergency", "total": int64(2)},
		frame.Row{"age_group": "51-70", "appointment_type": "Checkup", "total": int64(9)},
	)
}

func emergencyVisitsFixture() *frame.Frame {
	f := frame.New([]frame.Column{{Name: "day_of_week", Type: frame.String}, {Name: "emergency_visits", Type: frame.Int}})
	for _, d := range []struct {
		day string
		n   int64
	}{{"Friday", 134}, {"Monday", 92}, {"Sunday", 79}, {"Wednesday", 88}, {"Saturday", 97}, {"Tuesday", 85}, {"Thursday", 90}} {
		f.Rows = append(f.Rows, frame.Row{"day_of_week": d.day, "emergency_visits": d.n})
	}
	return f
}

func prescriptionDistributionFixture() *frame.Frame {
	return frame.New(
		[]frame.Column{{Name: "age_group", Type: frame.String}, {Name: "category", Type: frame.String}, {Name: "total", Type: frame.Int}},
		frame.Row{"age_group": "19-35", "category": "Pain", "total": int64(85)},
		frame.Row{"age_group": "19-35", "category": "Antibiotic", "total": int64(60)},
		frame.Row{"age_group": "71+", "category": "Pain", "total": int64(230)},
		frame.Row{"age_group": "71+", "category": "Cardiovascular", "total": int64(150)},
	)
}

func prescriptionCorrelationFixture() *frame.Frame {
	return frame.New(
		[]frame.Column{{Name: "prescription_frequency_bucket", Type: frame.String}, {Name: "avg_appointments", Type: frame.Float}, {Name: "avg_prescriptions", Type: frame.Float}},
		frame.Row{"prescription_frequency_bucket": "Few", "avg_appointments": 3.4, "avg_prescriptions": 1.6},
		frame.Row{"prescription_frequency_bucket": "Frequent", "avg_appointments": 2.2, "avg_prescriptions": 8.9},
	)
}

func prescriptionTrendFixture() *frame.Frame {
	return frame.New(
		[]frame.Column{{Name: "year", Type: frame.Int}, {Name: "month", Type: frame.Int}, {Name: "prescription_frequency", Type: frame.String}, {Name: "total", Type: frame.Int}},
		frame.Row{"year": int64(2023), "month": int64(3), "prescription_frequency": "First-time", "total": int64(80)},
		frame.Row{"year": int64(2023), "month": int64(3), "prescription_frequency": "Repeat", "total": int64(120)},
		frame.Row{"year": int64(2023), "month": int64(4), "prescription_frequency": "First-time", "total": int64(74)},
	)
}
