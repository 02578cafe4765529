package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Unsaif/pathrecon"
)

var (
	jsonBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

	deliverablesRe = regexp.MustCompile(`(?i)### Final Deliverables\s*`)
	jsonHeaderRe   = regexp.MustCompile(`(?i)\d+\.\s*\*\*JSON metabolic pathway model\*\*\s*`)
	explHeaderRe   = regexp.MustCompile(`(?i)\d+\.\s*\*\*Plain-language explanation\*\*.*?\n`)
	explSectionRe  = regexp.MustCompile(`(?i)### Plain-Language Explanation.*?\n`)
)

// ExtractJSONBlock pulls the JSON payload out of a model response: the first
// fenced code block if present, otherwise everything between the first "{"
// and the last "}".
func ExtractJSONBlock(s string) (string, bool) {
	if m := jsonBlockRe.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// ParsePathway extracts and decodes the pathway model from a raw response.
// Returns EUNPROCESSABLE if no JSON block is present or it does not decode.
func ParsePathway(raw string) (*pathrecon.Pathway, error) {
	block, ok := ExtractJSONBlock(raw)
	if !ok {
		return nil, pathrecon.Errorf(pathrecon.EUNPROCESSABLE, "no JSON block found in model response")
	}
	var p pathrecon.Pathway
	if err := json.Unmarshal([]byte(block), &p); err != nil {
		return nil, pathrecon.Errorf(pathrecon.EUNPROCESSABLE, "cannot decode pathway model: %s", err)
	}
	return &p, nil
}

// CleanExplanation strips the JSON block and the deliverable headers from a
// raw response, leaving the plain-language explanation.
func CleanExplanation(raw string) string {
	s := jsonBlockRe.ReplaceAllString(raw, "")
	s = deliverablesRe.ReplaceAllString(s, "")
	s = jsonHeaderRe.ReplaceAllString(s, "")
	s = explHeaderRe.ReplaceAllString(s, "")
	s = explSectionRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
