package main

import (
	"fmt"
	"strings"

	"github.com/Unsaif/pathrecon"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pathrecon.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:      %s\n", analysis.ID)
	fmt.Fprintf(deps.Stdout, "Name:    %s\n", analysis.Name)
	fmt.Fprintf(deps.Stdout, "Model:   %s\n", analysis.Model)
	fmt.Fprintf(deps.Stdout, "Created: %s\n", analysis.CreatedAt.Format("2006-01-02 15:04"))

	p := analysis.Pathway
	if p != nil {
		if len(p.Metabolites) > 0 {
			fmt.Fprintf(deps.Stdout, "\nMetabolites: %s\n", strings.Join(p.Metabolites, ", "))
		}
		if len(p.Enzymes) > 0 {
			fmt.Fprintf(deps.Stdout, "Enzymes:     %s\n", strings.Join(p.Enzymes, ", "))
		}

		fmt.Fprintln(deps.Stdout, "\nReactions:")
		for _, r := range p.Reactions {
			marker := " "
			if r.Hypothetical() {
				marker = "?"
			}
			fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, r.ID, r.Equation())
			if len(r.Enzyme) > 0 {
				fmt.Fprintf(deps.Stdout, "    enzyme: %s\n", strings.Join(r.Enzyme, ", "))
			}
			if s := r.Regulation.String(); s != "None" {
				fmt.Fprintf(deps.Stdout, "    regulation: %s\n", s)
			}
			for _, quote := range r.Evidence {
				fmt.Fprintf(deps.Stdout, "    evidence: %q\n", quote)
			}
		}
	}

	if analysis.Explanation != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", analysis.Explanation)
	}

	if c.Full && analysis.RawResponse != "" {
		fmt.Fprintf(deps.Stdout, "\n--- raw response ---\n%s\n", analysis.RawResponse)
	}

	return nil
}
