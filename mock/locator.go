package mock

import "github.com/Unsaif/pathrecon"

var _ pathrecon.Locator = (*Locator)(nil)

// Locator is a mock implementation of pathrecon.Locator.
type Locator struct {
	LocateFn func(doc *pathrecon.Document, queries []pathrecon.Query) []pathrecon.Annotation
}

func (l *Locator) Locate(doc *pathrecon.Document, queries []pathrecon.Query) []pathrecon.Annotation {
	return l.LocateFn(doc, queries)
}
