package pathrecon

import "strings"

// Highlight colors applied to evidence quotes. Confirmed reactions use the
// default yellow; hypothetical reactions use orange.
const (
	DefaultHighlightColor      = "rgba(255, 255, 0, 0.4)"
	HypotheticalHighlightColor = "rgba(255, 165, 0, 0.5)"
)

// MinQueryLength is the minimum normalized length for a query to be usable.
// Shorter fragments are too short to disambiguate reliably and are dropped.
const MinQueryLength = 5

// Query is a short text fragment to be located in a document. Text is the
// verbatim quote as extracted; Normalized is the whitespace-collapsed form
// used for matching. Color is an opaque display hint carried through to
// annotations.
type Query struct {
	Text       string `json:"text"`
	Color      string `json:"color,omitempty"`
	Normalized string `json:"-"`
}

// NewQuery returns a query for a bare quote string with the default color.
func NewQuery(text string) Query {
	return Query{Text: text, Color: DefaultHighlightColor}
}

// NormalizeQueries canonicalizes raw queries into the uniform form used by
// the matching engine: whitespace runs collapsed to single spaces, leading
// and trailing whitespace trimmed, missing colors defaulted. Queries whose
// normalized text is shorter than MinQueryLength are dropped silently.
func NormalizeQueries(queries []Query) []Query {
	out := make([]Query, 0, len(queries))
	for _, q := range queries {
		q.Normalized = normalizeText(q.Text)
		if len(q.Normalized) < MinQueryLength {
			continue
		}
		if q.Color == "" {
			q.Color = DefaultHighlightColor
		}
		out = append(out, q)
	}
	return out
}

// normalizeText collapses any run of whitespace to a single space and trims
// leading and trailing whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
