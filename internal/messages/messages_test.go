package messages

import (
	"errors"
	"strings"
	"testing"

	"github.com/eykd/doccheck/internal/domain"
	"github.com/eykd/doccheck/internal/validator"
)

func TestViolation_EnglishMatchesDomainMessages(t *testing.T) {
	l := New("en")
	violations := domain.Evaluate(domain.Counts{Total: 10, Heading1: 1}, domain.DefaultRules())

	for _, v := range violations {
		if got := l.Violation(v); got != v.Message {
			t.Errorf("Violation(%s) = %q, want domain message %q", v.Rule, got, v.Message)
		}
	}
}

func TestViolation_Hungarian(t *testing.T) {
	l := New("hu")
	violations := domain.Evaluate(domain.Counts{Total: 10, Heading1: 1}, domain.DefaultRules())

	want := []string{
		"Legalább 3 Heading 1 szükséges (3 fejezet), de csak 1 van.",
		"A dokumentum túl rövid: csak 10 bekezdés van (minimum 50 ajánlott).",
	}
	for i, v := range violations {
		if got := l.Violation(v); got != want[i] {
			t.Errorf("Violation(%s) = %q, want %q", v.Rule, got, want[i])
		}
	}
}

func TestViolation_UnknownRuleKeepsMessage(t *testing.T) {
	v := domain.Violation{Rule: "custom", Message: "custom rule failed"}
	if got := New("hu").Violation(v); got != "custom rule failed" {
		t.Errorf("Violation() = %q, want original message", got)
	}
}

func TestSprintf_Labels(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"en", ViolationsHeader, "VALIDATION ERRORS:"},
		{"hu", ViolationsHeader, "VALIDÁCIÓS HIBÁK:"},
		{"en", LabelParagraphs, "Paragraphs:"},
		{"hu", LabelParagraphs, "Bekezdések:"},
		{"hu", LabelHeading2, "Heading 2:"},
		{"xx-invalid-tag!", ViolationsHeader, "VALIDATION ERRORS:"},
		{"de", ViolationsHeader, "VALIDATION ERRORS:"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			if got := New(tt.lang).Sprintf(tt.key); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	tests := []struct {
		name string
		lang string
		err  error
		want string
	}{
		{"missing dependency en", "en", validator.ErrMissingDependency, validator.ErrMissingDependency.Error()},
		{"missing file en", "en", &validator.MissingFileError{Path: "a.docx"}, "file not found: a.docx"},
		{"missing file hu", "hu", &validator.MissingFileError{Path: "a.docx"}, "A fájl nem található: a.docx"},
		{"open en", "en", &validator.OpenError{Path: "a.docx", Err: cause}, "cannot open a.docx: zip: not a valid zip file"},
		{"open hu", "hu", &validator.OpenError{Path: "a.docx", Err: cause}, "Nem sikerült megnyitni a fájlt (a.docx): zip: not a valid zip file"},
		{"empty hu", "hu", &validator.EmptyDocumentError{Path: "a.docx"}, "A dokumentum üres (nincsenek bekezdések): a.docx"},
		{"violations hu", "hu", &validator.ViolationsError{Path: "a.docx", Violations: make([]domain.Violation, 2)}, "a.docx: a validáció 2 hibát talált"},
		{"other", "hu", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.lang).Error(tt.err); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_EnglishMatchesValidatorErrors(t *testing.T) {
	l := New("en")
	errs := []error{
		&validator.MissingFileError{Path: "x.docx"},
		&validator.OpenError{Path: "x.docx", Err: errors.New("bad")},
		&validator.EmptyDocumentError{Path: "x.docx"},
		&validator.ViolationsError{Path: "x.docx", Violations: make([]domain.Violation, 2)},
	}
	for _, err := range errs {
		if got := l.Error(err); got != err.Error() {
			t.Errorf("Error() = %q, want %q", got, err.Error())
		}
	}
}

func TestHungarianEntriesAreTranslated(t *testing.T) {
	for key, texts := range entries {
		if strings.TrimSpace(texts[1]) == "" {
			t.Errorf("entry %q has no Hungarian text", key)
		}
	}
}

func TestViolation_LargeCountsAreNotGrouped(t *testing.T) {
	v := domain.Violation{Rule: domain.RuleMinParagraphs, Observed: 1234, Minimum: 5000}

	for _, lang := range []string{"en", "hu"} {
		got := New(lang).Violation(v)
		if !strings.Contains(got, "1234") || !strings.Contains(got, "5000") {
			t.Errorf("Violation() in %s = %q, want ungrouped counts", lang, got)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(1000000); got != "1000000" {
		t.Errorf("Count(1000000) = %q, want %q", got, "1000000")
	}
}
