package docx

import (
	"archive/zip"
	"encoding/xml"
)

const paragraphStyleType = "paragraph"

// uiNames maps the lowercase names Word stores for built-in styles to the
// names shown in its user interface.
var uiNames = map[string]string{
	"caption":   "Caption",
	"footer":    "Footer",
	"header":    "Header",
	"heading 1": "Heading 1",
	"heading 2": "Heading 2",
	"heading 3": "Heading 3",
	"heading 4": "Heading 4",
	"heading 5": "Heading 5",
	"heading 6": "Heading 6",
	"heading 7": "Heading 7",
	"heading 8": "Heading 8",
	"heading 9": "Heading 9",
}

// UIName converts a stored style name to its user interface name.
func UIName(name string) string {
	if ui, ok := uiNames[name]; ok {
		return ui
	}
	return name
}

type xmlStyle struct {
	Type    string  `xml:"type,attr"`
	Default string  `xml:"default,attr"`
	ID      string  `xml:"styleId,attr"`
	Name    *xmlVal `xml:"name"`
}

type xmlStyles struct {
	Styles []xmlStyle `xml:"style"`
}

// styleTable resolves paragraph style ids to names.
type styleTable struct {
	names map[string]*string
	// def is the name of the default paragraph style, nil if there is none.
	def *string
	// hasDefault distinguishes "no default style" from "default style without a name".
	hasDefault bool
}

// resolve returns the style name for a paragraph referencing id. Paragraphs
// without a style, or with an id that is not a paragraph style, use the
// default paragraph style.
func (s styleTable) resolve(id string) *string {
	if id != "" {
		if name, ok := s.names[id]; ok {
			return name
		}
	}
	if s.hasDefault {
		return s.def
	}
	return nil
}

func readStyles(f *zip.File) (styleTable, error) {
	rc, err := openPart(f)
	if err != nil {
		return styleTable{}, err
	}
	defer rc.Close()

	var doc xmlStyles
	if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
		return styleTable{}, err
	}

	table := styleTable{names: make(map[string]*string)}
	for _, st := range doc.Styles {
		if st.Type != "" && st.Type != paragraphStyleType {
			continue
		}
		var name *string
		if st.Name != nil {
			n := UIName(st.Name.Val)
			name = &n
		}
		table.names[st.ID] = name
		if isTrue(st.Default) && !table.hasDefault {
			table.def, table.hasDefault = name, true
		}
	}
	return table, nil
}

// builtinStyles is used when a package carries no styles part.
func builtinStyles() styleTable {
	table := styleTable{names: make(map[string]*string)}
	add := func(id, name string) {
		n := name
		table.names[id] = &n
	}
	add("Normal", "Normal")
	add("Title", "Title")
	add("Subtitle", "Subtitle")
	add("Heading1", "Heading 1")
	add("Heading2", "Heading 2")
	add("Heading3", "Heading 3")
	add("Heading4", "Heading 4")
	add("Heading5", "Heading 5")
	add("Heading6", "Heading 6")
	add("Heading7", "Heading 7")
	add("Heading8", "Heading 8")
	add("Heading9", "Heading 9")
	table.def, table.hasDefault = table.names["Normal"], true
	return table
}

// isTrue reports whether an OOXML on/off attribute value is set.
func isTrue(v string) bool {
	switch v {
	case "1", "true", "on":
		return true
	}
	return false
}
