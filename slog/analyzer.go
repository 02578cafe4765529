// Package slog provides logging decorators for pathrecon services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Unsaif/pathrecon"
)

// Ensure LoggingAnalyzer implements pathrecon.Analyzer.
var _ pathrecon.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   pathrecon.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pathrecon.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// AnalyzePathway delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) AnalyzePathway(ctx context.Context, files []pathrecon.SourceFile) (analysis *pathrecon.Analysis, err error) {
	defer func(begin time.Time) {
		reactions := 0
		if analysis != nil && analysis.Pathway != nil {
			reactions = len(analysis.Pathway.Reactions)
		}
		a.logger.Info("pathway analysis",
			"files", len(files),
			"reactions", reactions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.AnalyzePathway(ctx, files)
}
