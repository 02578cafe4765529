package main

import (
	"encoding/json"
	"fmt"

	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/sqlite"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	files, err := readSourceFiles(c.Files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	hash := sqlite.HashSources(files)

	// Reuse an earlier analysis of the same files unless forced.
	var analysis *pathrecon.Analysis
	if !c.Force {
		existing, err := deps.Analyses.FindAnalyses(deps.Ctx, pathrecon.AnalysisFilter{SourceHash: &hash})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			analysis = existing[0]
			fmt.Fprintf(deps.Stderr, "Reusing analysis %s (use --force to re-analyze)\n", analysis.ID)
		}
	}

	if analysis == nil {
		analysis, err = deps.Analyzer.AnalyzePathway(deps.Ctx, files)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
			return err
		}
		analysis.SourceHash = hash

		if err := deps.Analyses.CreateAnalysis(deps.Ctx, analysis); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
			return err
		}
	}

	queries := pathrecon.EvidenceQueries(analysis.Pathway)
	results, err := deps.Runner.Run(deps.Ctx, files, queries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintf(deps.Stdout, "Analysis %s (%s)\n\n", analysis.ID, analysis.Model)
	if analysis.Explanation != "" {
		fmt.Fprintln(deps.Stdout, analysis.Explanation)
		fmt.Fprintln(deps.Stdout)
	}

	for _, r := range analysis.Pathway.Reactions {
		marker := " "
		if r.Hypothetical() {
			marker = "?"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, r.ID, r.Equation())
	}
	fmt.Fprintln(deps.Stdout)

	for _, result := range results {
		if result.Warning != "" {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", result.Name, result.Warning)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %d evidence highlights\n", result.Name, len(result.Annotations))
	}

	return nil
}
