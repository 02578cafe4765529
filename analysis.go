package pathrecon

import (
	"context"
	"time"
)

// Analysis is the stored result of one pathway reconstruction run over a set
// of source documents.
type Analysis struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Model       string    `json:"model"`
	SourceHash  string    `json:"sourceHash"`
	Pathway     *Pathway  `json:"pathway"`
	Explanation string    `json:"explanation"`
	RawResponse string    `json:"rawResponse,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "analysis name required")
	}
	if a.Pathway == nil {
		return Errorf(EINVALID, "analysis pathway required")
	}
	return nil
}

// Analyzer reconstructs a pathway model from source documents.
type Analyzer interface {
	// AnalyzePathway extracts a structured pathway from the given files.
	// The returned analysis is not yet persisted and has no ID.
	AnalyzePathway(ctx context.Context, files []SourceFile) (*Analysis, error)
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis persists a new analysis, assigning ID and CreatedAt.
	CreateAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID         *string `json:"id"`
	Name       *string `json:"name"`
	SourceHash *string `json:"sourceHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
