package validator

import (
	"errors"
	"fmt"

	"github.com/eykd/doccheck/internal/domain"
)

// ErrMissingDependency is returned when no document parser has been wired in.
var ErrMissingDependency = errors.New("no .docx parser is available; reinstall with: go install github.com/eykd/doccheck@latest")

// MissingFileError is returned when the document does not exist.
type MissingFileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return "file not found: " + e.Path
}

// Unwrap returns the underlying stat error.
func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// OpenError is returned when the document exists but cannot be opened or parsed.
type OpenError struct {
	Path string
	Err  error
}

// Error implements the error interface. The underlying cause is included.
func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// EmptyDocumentError is returned when the document has no paragraphs.
type EmptyDocumentError struct {
	Path string
}

// Error implements the error interface.
func (e *EmptyDocumentError) Error() string {
	return "document is empty (no paragraphs): " + e.Path
}

// ViolationsError is returned when one or more rules fail.
type ViolationsError struct {
	Path       string
	Violations []domain.Violation
}

// Error implements the error interface.
func (e *ViolationsError) Error() string {
	return fmt.Sprintf("%s failed validation with %d violation(s)", e.Path, len(e.Violations))
}
