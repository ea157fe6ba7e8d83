// Package docx reads the paragraph structure of Office Open XML (.docx) documents.
//
// Only what validation needs is decoded: the body-level paragraphs of
// word/document.xml and the style names they reference in word/styles.xml.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/eykd/doccheck/internal/domain"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"

	// maxPartSize bounds the decompressed size of a single XML part.
	maxPartSize = 64 << 20
)

// ErrNoDocumentPart is returned when the archive has no word/document.xml.
var ErrNoDocumentPart = errors.New("missing " + documentPart)

// ErrNoBody is returned when word/document.xml has no w:body element.
var ErrNoBody = errors.New("document has no body")

// Document is an opened .docx file. Its paragraphs are read once in Open and
// never change afterwards.
type Document struct {
	path       string
	paragraphs []domain.Paragraph
}

// Open reads the .docx file at path.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	doc, err := read(&zr.Reader)
	if err != nil {
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// OpenReader reads a .docx archive from r.
func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return read(zr)
}

func read(zr *zip.Reader) (*Document, error) {
	var docFile, stylesFile *zip.File
	for _, f := range zr.File {
		switch f.Name {
		case documentPart:
			docFile = f
		case stylesPart:
			stylesFile = f
		}
	}
	if docFile == nil {
		return nil, ErrNoDocumentPart
	}

	styles := builtinStyles()
	if stylesFile != nil {
		var err error
		styles, err = readStyles(stylesFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", stylesPart, err)
		}
	}

	raw, err := readBodyParagraphs(docFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", documentPart, err)
	}

	paragraphs := make([]domain.Paragraph, len(raw))
	for i, p := range raw {
		paragraphs[i] = domain.Paragraph{Style: styles.resolve(p.styleID())}
	}
	return &Document{paragraphs: paragraphs}, nil
}

// Path returns the file the document was opened from.
func (d *Document) Path() string { return d.path }

// Paragraphs returns the body paragraphs in document order.
func (d *Document) Paragraphs() []domain.Paragraph {
	out := make([]domain.Paragraph, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// openPart opens a zip member with a decompressed size limit.
func openPart(f *zip.File) (io.ReadCloser, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(rc, maxPartSize), rc}, nil
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlParagraph struct {
	Props *struct {
		Style *xmlVal `xml:"pStyle"`
	} `xml:"pPr"`
}

// styleID returns the referenced style id, or "" when the paragraph has none.
func (p xmlParagraph) styleID() string {
	if p.Props == nil || p.Props.Style == nil {
		return ""
	}
	return p.Props.Style.Val
}

// readBodyParagraphs decodes the w:p elements that are direct children of
// w:body. Paragraphs nested in tables or content controls are skipped.
func readBodyParagraphs(f *zip.File) ([]xmlParagraph, error) {
	rc, err := openPart(f)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var (
		paragraphs []xmlParagraph
		inBody     bool
		sawBody    bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !inBody {
				if t.Name.Local == "body" {
					inBody, sawBody = true, true
				}
				continue
			}
			if t.Name.Local != "p" {
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			var p xmlParagraph
			if err := dec.DecodeElement(&p, &t); err != nil {
				return nil, err
			}
			paragraphs = append(paragraphs, p)
		case xml.EndElement:
			if inBody && t.Name.Local == "body" {
				inBody = false
			}
		}
	}
	if !sawBody {
		return nil, ErrNoBody
	}
	return paragraphs, nil
}
