// Package gemini implements pathway analysis using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/Unsaif/pathrecon"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Analyzer implements pathrecon.Analyzer at compile time.
var _ pathrecon.Analyzer = (*Analyzer)(nil)

// Analyzer implements pathrecon.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, model string) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{client: client, model: model}
}

// AnalyzePathway sends the source PDFs and the reconstruction prompt to
// Gemini and parses the structured pathway model and plain-language
// explanation out of the response. The returned analysis is not persisted
// and has no ID.
func (a *Analyzer) AnalyzePathway(ctx context.Context, files []pathrecon.SourceFile) (*pathrecon.Analysis, error) {
	if len(files) == 0 {
		return nil, pathrecon.Errorf(pathrecon.EINVALID, "at least one source file required")
	}

	parts := make([]*genai.Part, 0, len(files)+1)
	for _, f := range files {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "application/pdf", Data: f.Data},
		})
	}
	parts = append(parts, &genai.Part{Text: reconstructionPrompt})

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{Parts: parts}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, pathrecon.Errorf(pathrecon.EINTERNAL, "gemini returned nil result")
	}

	raw := result.Text()
	pathway, err := ParsePathway(raw)
	if err != nil {
		return nil, err
	}

	return &pathrecon.Analysis{
		Name:        analysisName(files),
		Model:       a.model,
		Pathway:     pathway,
		Explanation: CleanExplanation(raw),
		RawResponse: raw,
	}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert in systems biology and bioinformatics. You extract and reconstruct metabolic pathways strictly from the contents of uploaded documents, never from outside knowledge.",
			}},
		},
		Temperature: &temp,
	}
}

func analysisName(files []pathrecon.SourceFile) string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}
