package utils

import (
	"strings"
	"time"

	"github.com/PawanYadav007s/Design-Records-APP/models"
)

// DateLayout is the ISO calendar date format used on every boundary:
// request payloads, the database date columns and the exported sheet.
const DateLayout = "2006-01-02"

// ParseDate validates and parses a required ISO date input field
func ParseDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, &models.ValidationError{Field: field, Reason: "is required"}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}

// FormatDate renders a date the way it is exported and returned to callers
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
