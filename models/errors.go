package models

import "fmt"

// ValidationError reports a missing or malformed required field, caught
// before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// DuplicateKeyError reports a unique-constraint violation (po_number or
// designer name).
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s: %q already exists", e.Field, e.Value)
}

// NotFoundError reports that a referenced id or po_number does not resolve
// to an existing row.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// ConflictError reports a concurrent status-transition race or a refused
// administrative action (deleting a PO that still owns design records).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ExportError wraps a spreadsheet write failure. The data mutation that
// triggered the export stays committed; only the snapshot is stale.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("snapshot export failed: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a settings file that exists but cannot be
// parsed, or a backup directory that cannot be created.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
