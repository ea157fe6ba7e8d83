package domain

// Heading style names recognized by the heading classifier. Matching is exact:
// "heading 1" or "Heading1" are not headings.
const (
	StyleHeading1 = "Heading 1"
	StyleHeading2 = "Heading 2"
	StyleHeading3 = "Heading 3"
)

// Paragraph is a single body paragraph of a document.
type Paragraph struct {
	// Style is the paragraph's style name, or nil when the paragraph has none.
	Style *string
}

// NewParagraph returns a paragraph with the given style name.
func NewParagraph(style string) Paragraph {
	return Paragraph{Style: &style}
}

// StyleName returns the style name, or "" when the style is absent.
func (p Paragraph) StyleName() string {
	if p.Style == nil {
		return ""
	}
	return *p.Style
}

// HeadingLevel classifies a paragraph into one of the tracked heading levels.
type HeadingLevel int

const (
	// HeadingNone covers body text, unknown styles and absent styles.
	HeadingNone HeadingLevel = iota
	// Heading1 is a top-level (chapter) heading.
	Heading1
	// Heading2 is a section heading.
	Heading2
	// Heading3 is a subsection heading.
	Heading3
)

// String returns the style name for heading levels and "none" otherwise.
func (h HeadingLevel) String() string {
	switch h {
	case Heading1:
		return StyleHeading1
	case Heading2:
		return StyleHeading2
	case Heading3:
		return StyleHeading3
	default:
		return "none"
	}
}

// Classify maps an optional style name to its heading level.
func Classify(style *string) HeadingLevel {
	if style == nil {
		return HeadingNone
	}
	switch *style {
	case StyleHeading1:
		return Heading1
	case StyleHeading2:
		return Heading2
	case StyleHeading3:
		return Heading3
	default:
		return HeadingNone
	}
}
