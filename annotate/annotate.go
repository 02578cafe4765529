// Package annotate provides document annotation orchestration.
// It coordinates extraction and quote localization across a batch
// of PDF files.
package annotate

import (
	"context"

	"github.com/Unsaif/pathrecon"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates extraction and localization for batches of documents.
type Runner struct {
	Extractor   pathrecon.DocumentExtractor
	Locator     pathrecon.Locator
	Concurrency int
}

// DocumentResult holds the annotations produced for a single document.
// Warning is set when the document could not be processed; in that
// case Annotations is empty.
type DocumentResult struct {
	Name        string                 `json:"name"`
	Annotations []pathrecon.Annotation `json:"annotations"`
	Warning     string                 `json:"warning,omitempty"`
}

// Run extracts each file and locates the queries in it. Results are
// returned in input order. A file that cannot be parsed produces a
// result with a warning instead of failing the batch.
func (r *Runner) Run(ctx context.Context, files []pathrecon.SourceFile, queries []pathrecon.Query) ([]DocumentResult, error) {
	if len(files) == 0 {
		return nil, pathrecon.Errorf(pathrecon.EINVALID, "At least one document is required.")
	}

	queries = pathrecon.NormalizeQueries(queries)

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]DocumentResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.processFile(file, queries)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// processFile extracts and annotates a single document.
func (r *Runner) processFile(file pathrecon.SourceFile, queries []pathrecon.Query) DocumentResult {
	result := DocumentResult{
		Name:        file.Name,
		Annotations: []pathrecon.Annotation{},
	}

	doc, err := r.Extractor.Extract(file)
	if err != nil {
		result.Warning = pathrecon.ErrorMessage(err)
		return result
	}

	annotations := r.Locator.Locate(doc, queries)
	if annotations != nil {
		result.Annotations = annotations
	}

	return result
}
