package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ValidationError",
			err:  &ValidationError{Field: "po_number", Reason: "is required"},
			want: "validation failed on po_number: is required",
		},
		{
			name: "DuplicateKeyError",
			err:  &DuplicateKeyError{Field: "po_number", Value: "PO-100"},
			want: `duplicate po_number: "PO-100" already exists`,
		},
		{
			name: "NotFoundError",
			err:  &NotFoundError{Entity: "PO", Key: "PO-404"},
			want: `PO "PO-404" not found`,
		},
		{
			name: "ConflictError",
			err:  &ConflictError{Message: "status changed"},
			want: "status changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExportErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &ExportError{Err: cause}

	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, errors.Is(err, cause))
}

func TestConfigurationErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := &ConfigurationError{Reason: "could not create backup directory", Err: cause}

	assert.Contains(t, err.Error(), "permission denied")
	assert.True(t, errors.Is(err, cause))

	bare := &ConfigurationError{Reason: "settings file is not parseable"}
	assert.Equal(t, "configuration error: settings file is not parseable", bare.Error())
}
