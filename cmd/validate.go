package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/eykd/doccheck/internal/domain"
	"github.com/eykd/doccheck/internal/messages"
	"github.com/eykd/doccheck/internal/validator"
	"github.com/spf13/cobra"
)

// Error kinds reported in structured output.
const (
	KindMissingDependency = "missing_dependency"
	KindMissingFile       = "missing_file"
	KindOpenFailure       = "open_failure"
	KindEmptyDocument     = "empty_document"
	KindError             = "error"
)

// reportDocument is the JSON/YAML output of a validation run.
type reportDocument struct {
	Path       string             `json:"path" yaml:"path"`
	Passed     bool               `json:"passed" yaml:"passed"`
	Counts     *domain.Counts     `json:"counts,omitempty" yaml:"counts,omitempty"`
	Violations []domain.Violation `json:"violations" yaml:"violations"`
	Error      *errorDocument     `json:"error,omitempty" yaml:"error,omitempty"`
}

// errorDocument describes a precondition failure in structured output.
type errorDocument struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// errorKind classifies a precondition failure.
func errorKind(err error) string {
	var (
		missing *validator.MissingFileError
		open    *validator.OpenError
		empty   *validator.EmptyDocumentError
	)
	switch {
	case errors.Is(err, validator.ErrMissingDependency):
		return KindMissingDependency
	case errors.As(err, &missing):
		return KindMissingFile
	case errors.As(err, &open):
		return KindOpenFailure
	case errors.As(err, &empty):
		return KindEmptyDocument
	default:
		return KindError
	}
}

// localizeViolations returns copies of vs with messages in the output language.
func localizeViolations(loc *messages.Localizer, vs []domain.Violation) []domain.Violation {
	out := make([]domain.Violation, len(vs))
	for i, v := range vs {
		v.Message = loc.Violation(v)
		out[i] = v
	}
	return out
}

// formatReportHuman writes either the violation list or the success summary.
func formatReportHuman(w io.Writer, s *session, r *validator.Report) {
	if !r.Passed() {
		s.colors.bad.Fprintln(w, s.loc.Sprintf(messages.ViolationsHeader))
		for _, v := range r.Violations {
			fmt.Fprintf(w, "  - %s\n", s.loc.Violation(v))
		}
		return
	}

	s.colors.good.Fprintln(w, s.loc.Sprintf(messages.PassedHeader, r.Path))
	writeCount(w, s.loc.Sprintf(messages.LabelParagraphs), r.Counts.Total)
	writeCount(w, s.loc.Sprintf(messages.LabelHeading1), r.Counts.Heading1)
	writeCount(w, s.loc.Sprintf(messages.LabelHeading2), r.Counts.Heading2)
	writeCount(w, s.loc.Sprintf(messages.LabelHeading3), r.Counts.Heading3)
}

func writeCount(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "  %-12s %d\n", label, n)
}

// runValidateAndReport validates the configured document and renders the result.
// Precondition failures are printed by RunCLI in text mode and embedded in
// the document in structured modes.
func runValidateAndReport(cmd *cobra.Command, s *session) error {
	path := s.cfg.Path
	report, err := s.runner.Run(cmd.Context(), path)
	out := cmd.OutOrStdout()

	if report == nil {
		if err != nil && s.structured() {
			s.encode(out, reportDocument{
				Path:       path,
				Violations: []domain.Violation{},
				Error:      &errorDocument{Kind: errorKind(err), Message: s.loc.Error(err)},
			})
		}
		return s.fail(err)
	}

	if s.structured() {
		counts := report.Counts
		s.encode(out, reportDocument{
			Path:       report.Path,
			Passed:     report.Passed(),
			Counts:     &counts,
			Violations: localizeViolations(s.loc, report.Violations),
		})
	} else {
		formatReportHuman(out, s, report)
	}
	return s.fail(err)
}
