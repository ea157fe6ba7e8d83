// Package validator provides the application service that checks a document
// against the minimum-content rules.
package validator

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/eykd/doccheck/internal/domain"
	"github.com/google/uuid"
)

// NoStyleLabel is the histogram key for paragraphs without a style.
const NoStyleLabel = "(none)"

// Document abstracts an opened document.
type Document interface {
	Paragraphs() []domain.Paragraph
}

// Opener abstracts the document parser.
type Opener interface {
	Open(path string) (Document, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Document, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Document, error) { return f(path) }

// FileStatter abstracts checking that the document exists.
type FileStatter interface {
	Stat(ctx context.Context, path string) (int64, error)
}

// Report is the outcome of a validation run.
type Report struct {
	Path       string             `json:"path" yaml:"path"`
	Counts     domain.Counts      `json:"counts" yaml:"counts"`
	Violations []domain.Violation `json:"violations" yaml:"violations"`
}

// Passed reports whether no rule was violated.
func (r *Report) Passed() bool {
	return len(r.Violations) == 0
}

// StyleCount is one histogram bucket.
type StyleCount struct {
	Style string `json:"style" yaml:"style"`
	Count int    `json:"count" yaml:"count"`
}

// StyleStats is the per-style paragraph histogram of a document.
type StyleStats struct {
	Path   string       `json:"path" yaml:"path"`
	Total  int          `json:"total" yaml:"total"`
	Styles []StyleCount `json:"styles" yaml:"styles"`
}

// Option configures a Validator.
type Option func(*Validator)

// WithRules replaces the default rule set.
func WithRules(rules []domain.Rule) Option {
	return func(v *Validator) { v.rules = rules }
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithRunID overrides how run identifiers are generated.
func WithRunID(fn func() string) Option {
	return func(v *Validator) { v.newRunID = fn }
}

// Validator checks one document per call. It holds no state between runs.
type Validator struct {
	opener   Opener
	statter  FileStatter
	rules    []domain.Rule
	logger   *slog.Logger
	newRunID func() string
}

// New creates a Validator. A nil opener makes every run fail with
// ErrMissingDependency.
func New(opener Opener, statter FileStatter, opts ...Option) *Validator {
	v := &Validator{
		opener:   opener,
		statter:  statter,
		rules:    domain.DefaultRules(),
		logger:   slog.New(slog.DiscardHandler),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run validates the document at path. It returns a Report whenever the
// document could be read; a failing report is accompanied by a
// *ViolationsError. Precondition failures return a nil Report.
func (v *Validator) Run(ctx context.Context, path string) (*Report, error) {
	log := v.logger.With("run", v.newRunID(), "path", path)

	paragraphs, err := v.load(ctx, log, path)
	if err != nil {
		return nil, err
	}

	counts := domain.Count(paragraphs)
	log.Debug("paragraphs counted",
		"total", counts.Total, "heading1", counts.Heading1,
		"heading2", counts.Heading2, "heading3", counts.Heading3)

	report := &Report{
		Path:       path,
		Counts:     counts,
		Violations: domain.Evaluate(counts, v.rules),
	}
	log.Debug("rules evaluated", "rules", len(v.rules), "violations", len(report.Violations))

	if !report.Passed() {
		return report, &ViolationsError{Path: path, Violations: report.Violations}
	}
	return report, nil
}

// Stats returns the style histogram of the document at path. It applies the
// same preconditions as Run.
func (v *Validator) Stats(ctx context.Context, path string) (*StyleStats, error) {
	log := v.logger.With("run", v.newRunID(), "path", path)

	paragraphs, err := v.load(ctx, log, path)
	if err != nil {
		return nil, err
	}

	byStyle := make(map[string]int)
	for _, p := range paragraphs {
		name := NoStyleLabel
		if p.Style != nil {
			name = *p.Style
		}
		byStyle[name]++
	}

	styles := make([]StyleCount, 0, len(byStyle))
	for name, n := range byStyle {
		styles = append(styles, StyleCount{Style: name, Count: n})
	}
	sort.Slice(styles, func(i, j int) bool {
		if styles[i].Count != styles[j].Count {
			return styles[i].Count > styles[j].Count
		}
		return styles[i].Style < styles[j].Style
	})

	return &StyleStats{Path: path, Total: len(paragraphs), Styles: styles}, nil
}

// load runs the precondition stages: parser available, file exists, file
// opens, document not empty.
func (v *Validator) load(ctx context.Context, log *slog.Logger, path string) ([]domain.Paragraph, error) {
	if v.opener == nil {
		return nil, ErrMissingDependency
	}

	size, err := v.statter.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path, Err: err}
		}
		return nil, &OpenError{Path: path, Err: err}
	}
	log.Debug("document located", "size", humanize.Bytes(uint64(size)))

	doc, err := v.opener.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	paragraphs := doc.Paragraphs()
	log.Debug("document opened", "paragraphs", len(paragraphs))
	if len(paragraphs) == 0 {
		return nil, &EmptyDocumentError{Path: path}
	}
	return paragraphs, nil
}
