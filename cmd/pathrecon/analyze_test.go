package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/annotate"
	main "github.com/Unsaif/pathrecon/cmd/pathrecon"
	"github.com/Unsaif/pathrecon/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPDF creates a throwaway file and returns its path.
func writeTestPDF(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// testPathway returns a small pathway with one confirmed and one
// hypothetical reaction.
func testPathway() *pathrecon.Pathway {
	return &pathrecon.Pathway{
		Metabolites: pathrecon.NameList{"glucose", "pyruvate"},
		Enzymes:     pathrecon.NameList{"hexokinase"},
		Reactions: []pathrecon.Reaction{
			{
				ID:         "R1",
				Certainty:  "confirmed",
				Substrates: pathrecon.StringList{"glucose"},
				Products:   pathrecon.StringList{"pyruvate"},
				Evidence:   pathrecon.StringList{"the liver converts glucose to pyruvate"},
			},
			{
				ID:         "R2",
				Certainty:  "hypothetical",
				Substrates: pathrecon.StringList{"pyruvate"},
				Products:   pathrecon.StringList{"lactate"},
				Evidence:   pathrecon.StringList{"pyruvate may be reduced to lactate"},
			},
		},
	}
}

// passthroughRunner returns a runner whose locator reports one annotation
// per query.
func passthroughRunner() *annotate.Runner {
	return &annotate.Runner{
		Extractor: &mock.DocumentExtractor{
			ExtractFn: func(file pathrecon.SourceFile) (*pathrecon.Document, error) {
				return &pathrecon.Document{Name: file.Name}, nil
			},
		},
		Locator: &mock.Locator{
			LocateFn: func(doc *pathrecon.Document, queries []pathrecon.Query) []pathrecon.Annotation {
				annotations := make([]pathrecon.Annotation, len(queries))
				for i, q := range queries {
					annotations[i] = pathrecon.Annotation{Page: 1, Quote: q.Normalized, Color: q.Color}
				}
				return annotations
			},
		},
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("analyzes, stores, and reports highlights", func(t *testing.T) {
		t.Parallel()

		var created *pathrecon.Analysis
		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, _ pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error) {
				return nil, nil
			},
			CreateAnalysisFn: func(_ context.Context, analysis *pathrecon.Analysis) error {
				created = analysis
				return nil
			},
		}
		analyzer := &mock.Analyzer{
			AnalyzePathwayFn: func(_ context.Context, files []pathrecon.SourceFile) (*pathrecon.Analysis, error) {
				return &pathrecon.Analysis{
					ID:      "an-1",
					Name:    "paper.pdf",
					Model:   "gemini-2.5-flash",
					Pathway: testPathway(),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analyses: analyses,
			Analyzer: analyzer,
			Runner:   passthroughRunner(),
		}

		cmd := &main.AnalyzeCmd{Files: []string{writeTestPDF(t, "paper.pdf", "pdf bytes")}}
		err := cmd.Run(deps)
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.NotEmpty(t, created.SourceHash)

		output := stdout.String()
		assert.Contains(t, output, "an-1")
		assert.Contains(t, output, "glucose -> pyruvate")
		assert.Contains(t, output, "? R2")
		assert.Contains(t, output, "paper.pdf: 2 evidence highlights")
	})

	t.Run("reuses stored analysis for identical sources", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, filter pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error) {
				require.NotNil(t, filter.SourceHash)
				return []*pathrecon.Analysis{{
					ID:      "an-cached",
					Name:    "paper.pdf",
					Pathway: testPathway(),
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analyses: analyses,
			Runner:   passthroughRunner(),
		}

		cmd := &main.AnalyzeCmd{Files: []string{writeTestPDF(t, "paper.pdf", "pdf bytes")}}
		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "Reusing analysis an-cached")
		assert.Contains(t, stdout.String(), "an-cached")
	})

	t.Run("emits annotations as JSON with --json", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, _ pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error) {
				return []*pathrecon.Analysis{{ID: "an-1", Name: "paper.pdf", Pathway: testPathway()}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analyses: analyses,
			Runner:   passthroughRunner(),
		}

		cmd := &main.AnalyzeCmd{
			Files: []string{writeTestPDF(t, "paper.pdf", "pdf bytes")},
			JSON:  true,
		}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, `"annotations"`)
		assert.Contains(t, output, "the liver converts glucose to pyruvate")
		assert.Contains(t, output, pathrecon.HypotheticalHighlightColor)
	})

	t.Run("returns analyzer error", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, _ pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error) {
				return nil, nil
			},
		}
		analyzer := &mock.Analyzer{
			AnalyzePathwayFn: func(_ context.Context, _ []pathrecon.SourceFile) (*pathrecon.Analysis, error) {
				return nil, pathrecon.Errorf(pathrecon.EINTERNAL, "model unavailable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analyses: analyses,
			Analyzer: analyzer,
			Runner:   passthroughRunner(),
		}

		cmd := &main.AnalyzeCmd{Files: []string{writeTestPDF(t, "paper.pdf", "pdf bytes")}}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, pathrecon.EINTERNAL, pathrecon.ErrorCode(err))
	})
}
