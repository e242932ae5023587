// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/warehouse"
)

// Loader returns the result of a query. warehouse.QueryCache satisfies it.
type Loader interface {
	Load(ctx context.Context, query string) (*frame.Frame, error)
}

// Builder loads the marts behind a section and renders them.
type Builder struct {
	loader  Loader
	queries warehouse.Queries
}

// NewBuilder returns a Builder reading through loader.
func NewBuilder(loader Loader, queries warehouse.Queries) *Builder {
	return &Builder{loader: loader, queries: queries}
}

// Build produces the report for section id. A failed query or transform
// fails this section only; the error is wrapped with the section ID.
func (b *Builder) Build(ctx context.Context, id string) (*Report, error) {
	if _, err := Lookup(id); err != nil {
		return nil, err
	}

	var (
		r   *Report
		err error
	)
	switch id {
	case SectionPatients:
		r, err = b.build(ctx, func(f []*frame.Frame) (*Report, error) {
			return PatientAnalysis(f[0], f[1])
		}, b.queries.PatientDistribution(), b.queries.AppointmentFrequency())
	case SectionAppointments:
		r, err = b.build(ctx, func(f []*frame.Frame) (*Report, error) {
			return AppointmentAnalysis(f[0], f[1])
		}, b.queries.AppointmentDistribution(), b.queries.EmergencyVisits())
	case SectionPrescriptions:
		r, err = b.build(ctx, func(f []*frame.Frame) (*Report, error) {
			return PrescriptionAnalysis(f[0], f[1], f[2])
		}, b.queries.PrescriptionDistribution(), b.queries.PrescriptionCorrelation(), b.queries.PrescriptionTrend())
	case SectionConclusions:
		r = Conclusions()
	}
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", id, err)
	}
	return r, nil
}

// build loads queries concurrently, then hands the frames, in query order,
// to render.
func (b *Builder) build(ctx context.Context, render func([]*frame.Frame) (*Report, error), queries ...string) (*Report, error) {
	frames := make([]*frame.Frame, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			f, err := b.loader.Load(gctx, q)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return render(frames)
}
