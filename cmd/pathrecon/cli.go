package main

import (
	"context"
	"io"

	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/annotate"
	"github.com/Unsaif/pathrecon/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Analyses  pathrecon.AnalysisService
	Analyzer  pathrecon.Analyzer
	Extractor pathrecon.DocumentExtractor
	Locator   pathrecon.Locator
	Runner    *annotate.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Analyze   AnalyzeCmd   `cmd:"" help:"Analyze PDF papers and reconstruct the metabolic pathway"`
	Highlight HighlightCmd `cmd:"" help:"Locate evidence quotes of a stored analysis in PDF papers"`
	Graph     GraphCmd     `cmd:"" help:"Print a Graphviz DOT graph for a stored analysis"`
	List      ListCmd      `cmd:"" help:"List stored analyses"`
	Show      ShowCmd      `cmd:"" help:"Show a stored analysis"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored analysis"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Files []string `arg:"" type:"existingfile" help:"PDF files to analyze"`
	JSON  bool     `help:"Emit evidence annotations as JSON"`
	Force bool     `short:"f" help:"Re-analyze even if these files were analyzed before"`
}

// HighlightCmd is the "highlight" subcommand.
type HighlightCmd struct {
	ID    string   `arg:"" help:"Analysis ID"`
	Files []string `arg:"" type:"existingfile" help:"PDF files to annotate"`
}

// GraphCmd is the "graph" subcommand.
type GraphCmd struct {
	ID string `arg:"" help:"Analysis ID"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Analysis ID"`
	Full bool   `help:"Show the raw model response"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}
