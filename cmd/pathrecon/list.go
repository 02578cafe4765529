package main

import (
	"fmt"

	"github.com/Unsaif/pathrecon"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, pathrecon.AnalysisFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'pathrecon analyze' to create one.")
		return nil
	}

	for _, a := range analyses {
		reactions := 0
		if a.Pathway != nil {
			reactions = len(a.Pathway.Reactions)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d reactions  %s\n",
			a.ID, a.Name, a.Model, reactions, a.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
