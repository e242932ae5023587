// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package validation checks HTTP request parameters with
// go-playground/validator v10 before they reach the report builder.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Failures come back as
// *RequestValidationError, which converts to the API's VALIDATION_ERROR
// shape:
//
//	req := validation.SectionRequest{Section: chi.URLParam(r, "section")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondError(w, http.StatusBadRequest, verr.ToAPIError())
//	    return
//	}
//
// # Custom tags
//
//   - slug: lowercase ASCII letters, digits and single hyphens, e.g.
//     "prescriptions" or "emergency-visits"
//
// Whether a well-formed slug names an existing section is not a
// validation concern; the reports package answers that with
// ErrUnknownSection.
package validation
