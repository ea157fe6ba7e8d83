package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/eykd/doccheck/internal/validator"
	"github.com/spf13/cobra"
)

// Process exit codes. By default every failure exits with ExitFailure; the
// distinct codes are used only when distinct_exit_codes is enabled.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitMissingFile       = 2
	ExitOpenFailure       = 3
	ExitEmptyDocument     = 4
	ExitMissingDependency = 5
)

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}

// RunError is a failed validation run with a localized message.
type RunError struct {
	Err  error
	Msg  string
	Code int
}

// Error returns the localized message.
func (e *RunError) Error() string {
	return e.Msg
}

// Unwrap returns the validator error.
func (e *RunError) Unwrap() error {
	return e.Err
}

// ExitCode implements ExitCoder.
func (e *RunError) ExitCode() int {
	return e.Code
}

// distinctExitCode maps a validator error to its distinct exit code.
func distinctExitCode(err error) int {
	var (
		missing *validator.MissingFileError
		open    *validator.OpenError
		empty   *validator.EmptyDocumentError
	)
	switch {
	case errors.Is(err, validator.ErrMissingDependency):
		return ExitMissingDependency
	case errors.As(err, &missing):
		return ExitMissingFile
	case errors.As(err, &open):
		return ExitOpenFailure
	case errors.As(err, &empty):
		return ExitEmptyDocument
	default:
		return ExitFailure
	}
}

// FormatError formats an error with the "doccheck: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("doccheck: %s\n", err.Error())
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the appropriate exit code.
func RunCLI(ctx context.Context, cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return ExitCodeFromError(err)
	}
	return ExitOK
}
