// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package frame

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn is wrapped by MissingColumnError.
	ErrMissingColumn = errors.New("missing column")

	// ErrNotNumeric is returned when an arithmetic transform meets a
	// non-numeric cell.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrInvalidValue is returned when a cell is numeric but out of range
	// for the transform, such as month 13.
	ErrInvalidValue = errors.New("invalid value")
)

// MissingColumnError reports a transform that referenced a column the
// input frame does not have.
type MissingColumnError struct {
	Op        string
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q (have: %s)", e.Op, e.Column, strings.Join(e.Available, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
