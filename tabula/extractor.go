// Package tabula implements document extraction on top of the
// github.com/tsawler/tabula PDF library.
package tabula

import (
	"os"
	"unicode"

	"github.com/Unsaif/pathrecon"
	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
)

// Ensure Extractor implements pathrecon.DocumentExtractor at compile time.
var _ pathrecon.DocumentExtractor = (*Extractor)(nil)

// Extractor converts PDF bytes into a positioned word layout.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the PDF and returns its word layout. Parse warnings are
// non-fatal; a document that parses with warnings is still usable. A file
// that cannot be parsed at all returns EUNPROCESSABLE.
func (e *Extractor) Extract(file pathrecon.SourceFile) (*pathrecon.Document, error) {
	// The tabula API is file-path based, so stage the bytes in a temp file.
	tmp, err := os.CreateTemp("", "pathrecon-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	src, _, err := tabula.Open(tmp.Name()).Document()
	if err != nil {
		return nil, pathrecon.Errorf(pathrecon.EUNPROCESSABLE, "cannot parse %q: %s", file.Name, err)
	}

	doc := &pathrecon.Document{Name: file.Name}
	for _, p := range src.Pages {
		page := &pathrecon.Page{Number: p.Number}
		for _, frag := range p.RawText {
			page.Words = append(page.Words, Words(frag)...)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// Words splits a text fragment into whitespace-delimited words. Fragment
// boxes cover whole runs of text, so each word's horizontal extent is
// apportioned proportionally by rune count; the vertical extent is the
// fragment's.
func Words(frag model.TextFragment) []pathrecon.Word {
	runes := []rune(frag.Text)
	total := len(runes)
	if total == 0 {
		return nil
	}
	perRune := frag.BBox.Width / float64(total)

	var words []pathrecon.Word
	start := -1
	for i := 0; i <= total; i++ {
		if i < total && !unicode.IsSpace(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, pathrecon.Word{
				Text: string(runes[start:i]),
				X0:   frag.BBox.X + perRune*float64(start),
				Y0:   frag.BBox.Y,
				X1:   frag.BBox.X + perRune*float64(i),
				Y1:   frag.BBox.Y + frag.BBox.Height,
			})
			start = -1
		}
	}
	return words
}
