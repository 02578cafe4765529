package mock

import (
	"context"

	"github.com/Unsaif/pathrecon"
)

var _ pathrecon.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pathrecon.Analyzer.
type Analyzer struct {
	AnalyzePathwayFn func(ctx context.Context, files []pathrecon.SourceFile) (*pathrecon.Analysis, error)
}

func (a *Analyzer) AnalyzePathway(ctx context.Context, files []pathrecon.SourceFile) (*pathrecon.Analysis, error) {
	return a.AnalyzePathwayFn(ctx, files)
}
