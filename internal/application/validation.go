package application

import (
	"errors"
	"fmt"
	"strings"

	"resumemcp/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: "is required",
		}
	}
	return nil
}

// ValidateKey checks that an id can be used verbatim as one path segment of an
// artifact path. Ids are not trimmed.
func ValidateKey(fieldName, id string) error {
	if id == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: "is required",
		}
	}
	if !IsSafeKey(id) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%q cannot be used as a path segment", id),
		}
	}
	return nil
}

// IsSafeKey reports whether id is usable as a single path segment.
func IsSafeKey(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, "/\\\x00")
}

// ValidateResume checks the document for schema violations. All problems are
// reported together; the result matches ErrMalformedDocument.
//
// Titles and names may be empty. Dangling references, duplicate ids and end
// dates before start dates are not violations.
func ValidateResume(r *domain.Resume) error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	for i, e := range r.Experiences {
		field := fmt.Sprintf("experiences[%d]", i)
		add(ValidateKey(field+".id", e.ID))
		if e.StartDate.IsZero() {
			add(&ValidationError{Field: field + ".start_date", Message: "is required"})
		}
	}
	for i, p := range r.Projects {
		field := fmt.Sprintf("projects[%d]", i)
		add(ValidateKey(field+".id", p.ID))
	}
	for i, s := range r.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		add(ValidateKey(field+".id", s.ID))
	}

	return errors.Join(errs...)
}
