// Package pathrecon reconstructs metabolic pathways from scientific papers.
// It analyzes PDF documents with an LLM to produce a structured pathway
// model with exact evidence quotes, then locates those quotes in the PDF
// word layout to produce positioned highlight annotations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, tabula/).
package pathrecon
