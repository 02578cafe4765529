package pathrecon

import "strings"

// Word is a single token on a page with its axis-aligned bounding box.
// Coordinates are in page-local units as supplied by the extractor; the
// matching engine treats them as opaque numbers.
type Word struct {
	Text string  `json:"text"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
}

// Validate returns an error if the word's bounding box is malformed.
func (w *Word) Validate() error {
	if w.X1 < w.X0 || w.Y1 < w.Y0 {
		return Errorf(EINVALID, "word %q has an inverted bounding box", w.Text)
	}
	if w.X0 < 0 || w.Y0 < 0 {
		return Errorf(EINVALID, "word %q has negative coordinates", w.Text)
	}
	return nil
}

// Page holds the words of a single document page in reading order.
type Page struct {
	// 1-based page number.
	Number int `json:"number"`

	Words []Word `json:"words"`
}

// Text reconstructs the page text by joining word tokens with single spaces.
// This is the one authoritative reconstruction of page text; the candidate
// filter and the window aligner both build on it.
func (p *Page) Text() string {
	var sb strings.Builder
	for i, w := range p.Words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
	}
	return sb.String()
}

// Document is a position-bearing rendering of a source file: ordered pages
// of positioned word tokens. Documents are immutable once built.
type Document struct {
	Name  string  `json:"name"`
	Pages []*Page `json:"pages"`
}

// Validate returns an error if the document structure is malformed.
func (d *Document) Validate() error {
	for _, p := range d.Pages {
		if p.Number < 1 {
			return Errorf(EINVALID, "page number must be 1-based, got %d", p.Number)
		}
		for i := range p.Words {
			if err := p.Words[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// SourceFile is a raw input file as received from the caller.
type SourceFile struct {
	Name string
	Data []byte
}

// DocumentExtractor converts raw file bytes into a positioned word layout.
// Implementations hide the underlying parsing library and file format.
type DocumentExtractor interface {
	// Extract parses the file and returns its word layout.
	// Returns EUNPROCESSABLE if the file cannot be parsed.
	Extract(file SourceFile) (*Document, error)
}
