// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hislight/internal/slug"
)

// Severity ranks a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue kinds reported by Validate.
const (
	KindField    = "field"    // a struct rule failed (required, url, ...)
	KindDangling = "dangling" // a foreign key points at a missing record
	KindID       = "id"       // an ID is not a URL-safe slug
)

// Issue describes one problem found in the catalog.
type Issue struct {
	Severity Severity `json:"severity"`
	Kind     string   `json:"kind"`
	Set      string   `json:"set"` // "category", "subcategory" or "resource"
	RecordID string   `json:"record_id"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	if i.Field != "" {
		return fmt.Sprintf("%s %s %q: %s %s", i.Severity, i.Set, i.RecordID, i.Field, i.Message)
	}
	return fmt.Sprintf("%s %s %q: %s", i.Severity, i.Set, i.RecordID, i.Message)
}

// Report collects the issues found by Validate.
type Report struct {
	Issues []Issue `json:"issues"`
}

// Errors counts issues with error severity.
func (r Report) Errors() int {
	return r.count(SeverityError)
}

// Warnings counts issues with warning severity.
func (r Report) Warnings() int {
	return r.count(SeverityWarning)
}

func (r Report) count(sev Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

// Err returns nil when the report is acceptable. Errors always fail;
// warnings fail only in strict mode.
func (r Report) Err(strict bool) error {
	errs, warns := r.Errors(), r.Warnings()
	if errs > 0 || (strict && warns > 0) {
		return fmt.Errorf("catalog invalid: %d errors, %d warnings", errs, warns)
	}
	return nil
}

// warningTags are struct rules whose failure does not stop the catalog
// from rendering.
var warningTags = map[string]bool{
	"url": true,
}

var validate = newValidator()

// newValidator returns a validator that reports JSON field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks field rules, referential integrity and ID shape.
// Dangling references are warnings: the store tolerates them by leaving
// the orphaned records out of category views.
func Validate(s *Store) Report {
	var r Report

	for _, c := range s.categories {
		r.checkStruct("category", c.ID, c)
		r.checkID("category", c.ID)
	}

	for _, sc := range s.subcategories {
		r.checkStruct("subcategory", sc.ID, sc)
		r.checkID("subcategory", sc.ID)
		if _, ok := s.Category(sc.CategoryID); !ok && sc.CategoryID != "" {
			r.Issues = append(r.Issues, Issue{
				Severity: SeverityWarning,
				Kind:     KindDangling,
				Set:      "subcategory",
				RecordID: sc.ID,
				Field:    "categoryId",
				Message:  fmt.Sprintf("references unknown category %q", sc.CategoryID),
			})
		}
	}

	for _, res := range s.resources {
		r.checkStruct("resource", res.ID, res)
		if _, ok := s.Subcategory(res.SubcategoryID); !ok && res.SubcategoryID != "" {
			r.Issues = append(r.Issues, Issue{
				Severity: SeverityWarning,
				Kind:     KindDangling,
				Set:      "resource",
				RecordID: res.ID,
				Field:    "subcategoryId",
				Message:  fmt.Sprintf("references unknown subcategory %q", res.SubcategoryID),
			})
		}
	}

	return r
}

// checkStruct runs the validator struct rules on a record.
func (r *Report) checkStruct(set, id string, record any) {
	err := validate.Struct(record)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		r.Issues = append(r.Issues, Issue{
			Severity: SeverityError, Kind: KindField, Set: set, RecordID: id, Message: err.Error(),
		})
		return
	}

	for _, fe := range fieldErrs {
		sev := SeverityError
		if warningTags[fe.Tag()] {
			sev = SeverityWarning
		}
		r.Issues = append(r.Issues, Issue{
			Severity: sev,
			Kind:     KindField,
			Set:      set,
			RecordID: id,
			Field:    fe.Field(),
			Message:  friendlyMessage(fe),
		})
	}
}

// checkID flags IDs that would need escaping in a URL.
func (r *Report) checkID(set, id string) {
	if id == "" || slug.Valid(id) {
		return
	}
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Kind:     KindID,
		Set:      set,
		RecordID: id,
		Field:    "id",
		Message:  fmt.Sprintf("is not a URL-safe slug (suggested %q)", slug.Generate(id)),
	})
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be an absolute URL"
	default:
		return "is invalid"
	}
}
