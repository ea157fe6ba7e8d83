package domain

import "fmt"

// Default thresholds for the minimum-content rules.
const (
	// MinHeading1 is the minimum number of top-level headings (one per chapter).
	MinHeading1 = 3
	// MinParagraphs is the minimum number of body paragraphs.
	MinParagraphs = 50
)

// Rule identifiers.
const (
	RuleMinHeading1   = "min_heading1"
	RuleMinParagraphs = "min_paragraphs"
)

// Thresholds configures the minimums enforced by the rule set.
type Thresholds struct {
	MinHeading1   int
	MinParagraphs int
}

// DefaultThresholds returns the built-in minimums.
func DefaultThresholds() Thresholds {
	return Thresholds{MinHeading1: MinHeading1, MinParagraphs: MinParagraphs}
}

// Violation is a failed rule with its observed value and a readable message.
type Violation struct {
	Rule     string `json:"rule" yaml:"rule"`
	Observed int    `json:"observed" yaml:"observed"`
	Minimum  int    `json:"minimum" yaml:"minimum"`
	Message  string `json:"message" yaml:"message"`
}

// Rule checks one property of the aggregate counts.
type Rule struct {
	ID    string
	Check func(Counts) (Violation, bool)
}

// minimumRule builds a rule that fails when observe(c) < min.
func minimumRule(id string, min int, observe func(Counts) int, format func(min, n int) string) Rule {
	return Rule{
		ID: id,
		Check: func(c Counts) (Violation, bool) {
			n := observe(c)
			if n >= min {
				return Violation{}, false
			}
			return Violation{Rule: id, Observed: n, Minimum: min, Message: format(min, n)}, true
		},
	}
}

// HeadingViolationMessage formats the top-level heading violation.
func HeadingViolationMessage(min, n int) string {
	return fmt.Sprintf("at least %d top-level headings required (%d chapters), found %d", min, min, n)
}

// ParagraphViolationMessage formats the document length violation.
func ParagraphViolationMessage(min, n int) string {
	return fmt.Sprintf("document too short: only %d paragraphs (minimum %d recommended)", n, min)
}

// NewRules returns the rule set for the given thresholds, in reporting order.
func NewRules(t Thresholds) []Rule {
	return []Rule{
		minimumRule(RuleMinHeading1, t.MinHeading1,
			func(c Counts) int { return c.Heading1 }, HeadingViolationMessage),
		minimumRule(RuleMinParagraphs, t.MinParagraphs,
			func(c Counts) int { return c.Total }, ParagraphViolationMessage),
	}
}

// DefaultRules returns the rule set for DefaultThresholds.
func DefaultRules() []Rule {
	return NewRules(DefaultThresholds())
}

// Evaluate runs every rule against c and returns all violations in rule order.
// It never stops at the first failure.
func Evaluate(c Counts, rules []Rule) []Violation {
	var violations []Violation
	for _, r := range rules {
		if v, failed := r.Check(c); failed {
			violations = append(violations, v)
		}
	}
	return violations
}
