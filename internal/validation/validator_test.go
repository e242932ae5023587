// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package validation

import (
	"strings"
	"sync"
	"testing"

	"github.com/gaco/portrait-data-engineer-test/internal/models"
)

// ===================================================================================================
// Singleton
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	got := make(chan any, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got <- GetValidator()
		}()
	}
	wg.Wait()
	close(got)

	first := GetValidator()
	for v := range got {
		if v != first {
			t.Fatal("GetValidator() returned different instances")
		}
	}
}

// ===================================================================================================
// SectionRequest
// ===================================================================================================

func TestSectionRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section string
		wantTag string
	}{
		{"known section", "patients", ""},
		{"unknown but well formed", "billing", ""},
		{"hyphenated", "emergency-visits", ""},
		{"empty", "", "required"},
		{"uppercase", "Patients", "slug"},
		{"path traversal", "../etc", "slug"},
		{"sql", "x;drop", "slug"},
		{"leading hyphen", "-patients", "slug"},
		{"too long", strings.Repeat("a", 33), "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&SectionRequest{Section: tt.section})
			if tt.wantTag == "" {
				if err != nil {
					t.Errorf("ValidateStruct(%q) = %v, want nil", tt.section, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateStruct(%q) = nil, want %s failure", tt.section, tt.wantTag)
			}
			if got := err.Errors()[0].Tag(); got != tt.wantTag {
				t.Errorf("tag = %q, want %q", got, tt.wantTag)
			}
			if f := err.Errors()[0].Field(); f != "Section" {
				t.Errorf("field = %q, want Section", f)
			}
		})
	}
}

// ===================================================================================================
// ToAPIError
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&SectionRequest{Section: "Bad!"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != models.ErrCodeValidation {
		t.Errorf("Code = %s, want %s", apiErr.Code, models.ErrCodeValidation)
	}
	if !strings.Contains(apiErr.Message, "lowercase letters") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "Section" || apiErr.Details["value"] != "Bad!" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

type pagedRequest struct {
	Name  string `validate:"required"`
	Limit int    `validate:"min=1,max=100"`
	Kind  string `validate:"omitempty,oneof=chart table"`
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&pagedRequest{Limit: 0, Kind: "pie"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(err.Errors()); n != 3 {
		t.Fatalf("Errors() = %d, want 3", n)
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]any)
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
	}
	for _, want := range []string{"Name: Name is required", "Limit: Limit must be at least 1", "Kind must be one of: chart table"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("Message %q missing %q", apiErr.Message, want)
		}
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != models.ErrCodeValidation || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty Error() message")
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct("patients")
	if err == nil || err.Errors()[0].Tag() != "unknown" {
		t.Errorf("ValidateStruct(string) = %v", err)
	}
}
