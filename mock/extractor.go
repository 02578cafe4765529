package mock

import "github.com/Unsaif/pathrecon"

var _ pathrecon.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of pathrecon.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(file pathrecon.SourceFile) (*pathrecon.Document, error)
}

func (e *DocumentExtractor) Extract(file pathrecon.SourceFile) (*pathrecon.Document, error) {
	return e.ExtractFn(file)
}
