package slog

import (
	"log/slog"
	"time"

	"github.com/Unsaif/pathrecon"
)

// Ensure LoggingLocator implements pathrecon.Locator.
var _ pathrecon.Locator = (*LoggingLocator)(nil)

// LoggingLocator wraps a Locator with logging.
type LoggingLocator struct {
	next   pathrecon.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next pathrecon.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the operation.
func (l *LoggingLocator) Locate(doc *pathrecon.Document, queries []pathrecon.Query) []pathrecon.Annotation {
	begin := time.Now()
	annotations := l.next.Locate(doc, queries)
	name := ""
	if doc != nil {
		name = doc.Name
	}
	l.logger.Info("quote localization",
		"document", name,
		"queries", len(queries),
		"annotations", len(annotations),
		"duration", time.Since(begin),
	)
	return annotations
}
