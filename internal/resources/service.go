package resources

import (
	"time"

	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
)

// Shared list orderings. Chronological sections sort by their own dates
// first; the creation timestamp is the tiebreaker.
var (
	orderByCreated      = []string{"created_at DESC"}
	orderByStartDate    = []string{"start_date DESC", "created_at DESC"}
	orderByNameThenDate = []string{"name ASC", "created_at DESC"}
)

func errNoFields() error {
	return pkgerrors.New(pkgerrors.CodeValidation, "no valid fields to update")
}

func errNotFound(resource string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, resource+" not found")
}

// validateDateRange enforces the rules shared by every dated section: the
// range must start in the past and end after it starts.
func validateDateRange(start time.Time, end *time.Time) error {
	now := time.Now().UTC()
	if start.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails("start_date is required")
	}
	if start.After(now) {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails("start_date cannot be in the future")
	}
	if end != nil {
		if end.After(now) {
			return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails("end_date cannot be in the future")
		}
		if end.Before(start) {
			return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails("end_date cannot be before start_date")
		}
	}
	return nil
}
