package domain

// Counts holds the aggregate paragraph counts of a document.
type Counts struct {
	Total    int `json:"total" yaml:"total"`
	Heading1 int `json:"heading1" yaml:"heading1"`
	Heading2 int `json:"heading2" yaml:"heading2"`
	Heading3 int `json:"heading3" yaml:"heading3"`
}

// Count walks the paragraphs once and tallies the total and per-level heading counts.
func Count(paragraphs []Paragraph) Counts {
	c := Counts{Total: len(paragraphs)}
	for _, p := range paragraphs {
		switch Classify(p.Style) {
		case Heading1:
			c.Heading1++
		case Heading2:
			c.Heading2++
		case Heading3:
			c.Heading3++
		}
	}
	return c
}
