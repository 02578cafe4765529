package main

import (
	"fmt"

	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/dot"
)

// Run executes the graph command.
func (c *GraphCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, dot.Generate(analysis.Pathway))
	return nil
}
