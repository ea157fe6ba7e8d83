// Package messages renders user-facing report text in English or Hungarian.
package messages

import (
	"errors"
	"strconv"

	"github.com/eykd/doccheck/internal/domain"
	"github.com/eykd/doccheck/internal/validator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	ViolationsHeader   = "violations.header"
	PassedHeader       = "passed.header"
	LabelParagraphs    = "label.paragraphs"
	LabelHeading1      = "label.heading1"
	LabelHeading2      = "label.heading2"
	LabelHeading3      = "label.heading3"
	StatsHeader        = "stats.header"
	HeadingViolation   = "violation.min_heading1"
	ParagraphViolation = "violation.min_paragraphs"
	MissingDependency  = "error.missing_dependency"
	MissingFile        = "error.missing_file"
	OpenFailure        = "error.open"
	EmptyDocument      = "error.empty"
	ViolationsFound    = "error.violations"
	ColumnStyle        = "stats.column.style"
	ColumnCount        = "stats.column.count"
)

var entries = map[string][2]string{
	ViolationsHeader: {"VALIDATION ERRORS:", "VALIDÁCIÓS HIBÁK:"},
	PassedHeader:     {"OK: %s", "OK: %s"},
	LabelParagraphs:  {"Paragraphs:", "Bekezdések:"},
	LabelHeading1:    {"Heading 1:", "Heading 1:"},
	LabelHeading2:    {"Heading 2:", "Heading 2:"},
	LabelHeading3:    {"Heading 3:", "Heading 3:"},
	StatsHeader:      {"%s: %s paragraphs", "%s: %s bekezdés"},
	HeadingViolation: {
		"at least %[1]s top-level headings required (%[1]s chapters), found %[2]s",
		"Legalább %[1]s Heading 1 szükséges (%[1]s fejezet), de csak %[2]s van.",
	},
	ParagraphViolation: {
		"document too short: only %[2]s paragraphs (minimum %[1]s recommended)",
		"A dokumentum túl rövid: csak %[2]s bekezdés van (minimum %[1]s ajánlott).",
	},
	MissingDependency: {
		"no .docx parser is available; reinstall with: go install github.com/eykd/doccheck@latest",
		"Nem érhető el .docx feldolgozó. Telepítés: go install github.com/eykd/doccheck@latest",
	},
	MissingFile:   {"file not found: %s", "A fájl nem található: %s"},
	OpenFailure:   {"cannot open %s: %v", "Nem sikerült megnyitni a fájlt (%s): %v"},
	EmptyDocument: {"document is empty (no paragraphs): %s", "A dokumentum üres (nincsenek bekezdések): %s"},
	ViolationsFound: {
		"%s failed validation with %s violation(s)",
		"%s: a validáció %s hibát talált",
	},
	ColumnStyle: {"Style", "Stílus"},
	ColumnCount: {"Paragraphs", "Bekezdések"},
}

var (
	cat       = buildCatalog()
	supported = []language.Tag{language.English, language.Hungarian}
	matcher   = language.NewMatcher(supported)
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, texts := range entries {
		// Keys and formats are static, so SetString cannot fail here.
		_ = b.SetString(language.English, key, texts[0])
		_ = b.SetString(language.Hungarian, key, texts[1])
	}
	return b
}

// Localizer formats report text for one language.
type Localizer struct {
	p *message.Printer
}

// New returns a Localizer for a BCP 47 language tag such as "en" or "hu".
// Tags other than Hungarian fall back to English.
func New(lang string) *Localizer {
	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		_, i, _ := matcher.Match(parsed)
		tag = supported[i]
	}
	return &Localizer{p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Sprintf formats the message stored under key. Numbers are localized by
// the printer, so pass counts through Count to keep them ungrouped.
func (l *Localizer) Sprintf(key string, args ...interface{}) string {
	return l.p.Sprintf(key, args...)
}

// Count formats n without digit grouping.
func Count(n int) string {
	return strconv.Itoa(n)
}

// Violation renders a rule violation. Violations of unknown rules keep their
// own message.
func (l *Localizer) Violation(v domain.Violation) string {
	switch v.Rule {
	case domain.RuleMinHeading1:
		return l.Sprintf(HeadingViolation, Count(v.Minimum), Count(v.Observed))
	case domain.RuleMinParagraphs:
		return l.Sprintf(ParagraphViolation, Count(v.Minimum), Count(v.Observed))
	default:
		return v.Message
	}
}

// Error renders validator precondition errors. Other errors are returned
// unchanged.
func (l *Localizer) Error(err error) string {
	var (
		missing *validator.MissingFileError
		open    *validator.OpenError
		empty   *validator.EmptyDocumentError
		failed  *validator.ViolationsError
	)
	switch {
	case errors.Is(err, validator.ErrMissingDependency):
		return l.Sprintf(MissingDependency)
	case errors.As(err, &missing):
		return l.Sprintf(MissingFile, missing.Path)
	case errors.As(err, &open):
		return l.Sprintf(OpenFailure, open.Path, open.Err)
	case errors.As(err, &empty):
		return l.Sprintf(EmptyDocument, empty.Path)
	case errors.As(err, &failed):
		return l.Sprintf(ViolationsFound, failed.Path, Count(len(failed.Violations)))
	default:
		return err.Error()
	}
}
