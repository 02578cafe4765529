package mock

import (
	"context"

	"github.com/Unsaif/pathrecon"
)

var _ pathrecon.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of pathrecon.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, analysis *pathrecon.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*pathrecon.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *pathrecon.Analysis) error {
	return s.CreateAnalysisFn(ctx, analysis)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*pathrecon.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}
