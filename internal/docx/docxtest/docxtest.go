// Package docxtest builds small .docx files for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DefaultStyles declares Normal as the default paragraph style and the three
// heading styles with the lowercase names Word writes for built-ins.
const DefaultStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wordNS + `">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
  <w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/></w:style>
  <w:style w:type="character" w:styleId="Strong"><w:name w:val="Strong"/></w:style>
</w:styles>`

// Builder assembles the body of a test document.
type Builder struct {
	body     strings.Builder
	styles   string
	noStyles bool
}

// New returns a Builder using DefaultStyles.
func New() *Builder {
	return &Builder{styles: DefaultStyles}
}

// Paragraph appends a body paragraph. An empty styleID omits w:pStyle.
func (b *Builder) Paragraph(styleID string) *Builder {
	b.body.WriteString(paragraphXML(styleID))
	return b
}

// Paragraphs appends n body paragraphs with the same style.
func (b *Builder) Paragraphs(n int, styleID string) *Builder {
	for i := 0; i < n; i++ {
		b.Paragraph(styleID)
	}
	return b
}

// Table appends a one-cell table holding n paragraphs. Table paragraphs are
// not body paragraphs.
func (b *Builder) Table(n int, styleID string) *Builder {
	b.body.WriteString("<w:tbl><w:tr><w:tc>")
	for i := 0; i < n; i++ {
		b.body.WriteString(paragraphXML(styleID))
	}
	b.body.WriteString("</w:tc></w:tr></w:tbl>")
	return b
}

// Styles replaces the styles part.
func (b *Builder) Styles(xml string) *Builder {
	b.styles = xml
	return b
}

// NoStyles omits word/styles.xml from the package.
func (b *Builder) NoStyles() *Builder {
	b.noStyles = true
	return b
}

// Bytes returns the zipped package.
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := map[string]string{
		"[Content_Types].xml": contentTypes,
		"word/document.xml":   b.documentXML(),
	}
	if !b.noStyles {
		parts["word/styles.xml"] = b.styles
	}
	for _, name := range []string{"[Content_Types].xml", "word/document.xml", "word/styles.xml"} {
		content, ok := parts[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the package to path, creating parent directories.
func (b *Builder) WriteFile(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Write writes the package to dir/name and returns its path, failing t on error.
func (b *Builder) Write(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("writing test document %s: %v", path, err)
	}
	return path
}

// Manual builds a document with the given total paragraph count and heading
// counts. Remaining paragraphs have no explicit style.
func Manual(total, h1, h2, h3 int) *Builder {
	b := New()
	b.Paragraphs(h1, "Heading1")
	b.Paragraphs(h2, "Heading2")
	b.Paragraphs(h3, "Heading3")
	if rest := total - h1 - h2 - h3; rest > 0 {
		b.Paragraphs(rest, "")
	}
	return b
}

func (b *Builder) documentXML() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s"><w:body>%s<w:sectPr/></w:body></w:document>`, wordNS, b.body.String())
}

func paragraphXML(styleID string) string {
	if styleID == "" {
		return `<w:p><w:r><w:t>text</w:t></w:r></w:p>`
	}
	return fmt.Sprintf(`<w:p><w:pPr><w:pStyle w:val="%s"/></w:pPr><w:r><w:t>text</w:t></w:r></w:p>`, styleID)
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
