package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/mock"
	recslog "github.com/Unsaif/pathrecon/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnalyzer_AnalyzePathway(t *testing.T) {
	t.Parallel()

	t.Run("logs file and reaction counts with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzePathwayFn: func(ctx context.Context, files []pathrecon.SourceFile) (*pathrecon.Analysis, error) {
				return &pathrecon.Analysis{
					Name: "paper.pdf",
					Pathway: &pathrecon.Pathway{
						Reactions: []pathrecon.Reaction{{ID: "R1"}, {ID: "R2"}},
					},
				}, nil
			},
		}

		analyzer := recslog.NewLoggingAnalyzer(inner, logger)
		analysis, err := analyzer.AnalyzePathway(context.Background(), []pathrecon.SourceFile{{Name: "paper.pdf"}})
		require.NoError(t, err)
		require.NotNil(t, analysis)

		output := buf.String()
		assert.Contains(t, output, "pathway analysis")
		assert.Contains(t, output, "files=1")
		assert.Contains(t, output, "reactions=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error from wrapped analyzer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzePathwayFn: func(ctx context.Context, files []pathrecon.SourceFile) (*pathrecon.Analysis, error) {
				return nil, pathrecon.Errorf(pathrecon.EINTERNAL, "model unavailable")
			},
		}

		analyzer := recslog.NewLoggingAnalyzer(inner, logger)
		_, err := analyzer.AnalyzePathway(context.Background(), nil)
		require.Error(t, err)

		output := buf.String()
		assert.Contains(t, output, "model unavailable")
	})
}
