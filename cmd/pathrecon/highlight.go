package main

import (
	"encoding/json"
	"fmt"

	"github.com/Unsaif/pathrecon"
)

// Run executes the highlight command.
func (c *HighlightCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
		return err
	}

	files, err := readSourceFiles(c.Files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	queries := pathrecon.EvidenceQueries(analysis.Pathway)
	results, err := deps.Runner.Run(deps.Ctx, files, queries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
		return err
	}

	for _, result := range results {
		if result.Warning != "" {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", result.Name, result.Warning)
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
