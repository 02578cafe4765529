// Package match locates evidence quotes in a document's word layout using
// fuzzy string matching. Quotes are not guaranteed to be byte-identical to
// document text (reflow, ligatures, hyphenation, transcription drift), so
// matching runs in two stages: a cheap per-page candidate filter against the
// full reconstructed page text, then a windowed scan over contiguous token
// runs to find the best-aligned span.
//
// The two stages intentionally use different metrics: the filter scores the
// quote against the best-aligned substring of page text, the aligner scores
// whole window strings symmetrically. A page can therefore pass the filter
// yet yield no final match; that is expected behavior, the filter is purely
// a cost-saving pre-check.
package match

import (
	"strings"

	"github.com/Unsaif/pathrecon"
)

// Default matching parameters. The window slack values come from observed
// behavior against real papers: matched spans rarely differ from the quote's
// token count by more than a couple of words in either direction.
const (
	DefaultThreshold = 85
	DefaultMinSlack  = 2
	DefaultMaxSlack  = 4
)

// Ensure Matcher implements pathrecon.Locator at compile time.
var _ pathrecon.Locator = (*Matcher)(nil)

// Matcher locates queries in documents. The zero value uses the default
// threshold and window slack.
type Matcher struct {
	// Threshold is the minimum score in (0,100] for both the page filter
	// and the final match decision. Zero means DefaultThreshold.
	Threshold float64

	// MinSlack and MaxSlack bound the scanned window sizes relative to the
	// quote's token count: [tokens-MinSlack, tokens+MaxSlack], clamped to a
	// minimum window of one word. Zero means the defaults.
	MinSlack int
	MaxSlack int
}

// Locate finds every query in the document and returns one annotation per
// matched word. Queries are normalized first; degenerate queries produce no
// annotations. The computation is pure and deterministic: processing order
// is query-major then page-major, and within a page ties between equally
// scored windows resolve to the first observed (start, size) pair.
func (m *Matcher) Locate(doc *pathrecon.Document, queries []pathrecon.Query) []pathrecon.Annotation {
	if doc == nil {
		return nil
	}
	queries = pathrecon.NormalizeQueries(queries)
	if len(queries) == 0 {
		return nil
	}

	// Lower-case each page once; every query scans the same reconstruction.
	pages := make([]pageText, len(doc.Pages))
	for i, p := range doc.Pages {
		pages[i] = newPageText(p)
	}

	var anns []pathrecon.Annotation
	for _, q := range queries {
		quote := strings.ToLower(q.Normalized)
		for i, page := range doc.Pages {
			if PartialRatio(quote, pages[i].full) < m.threshold() {
				continue
			}
			match, ok := m.align(page.Number, pages[i].words, quote)
			if !ok {
				continue
			}
			for _, w := range page.Words[match.Start:match.End] {
				anns = append(anns, pathrecon.Annotation{
					Page:   match.Page,
					X:      w.X0,
					Y:      w.Y0,
					Width:  w.X1 - w.X0,
					Height: w.Y1 - w.Y0,
					Color:  q.Color,
					Quote:  q.Text,
				})
			}
		}
	}
	return anns
}

// MatchPage runs both stages for a single (query, page) pair and returns the
// accepted match, if any. The query is normalized first.
func (m *Matcher) MatchPage(page *pathrecon.Page, q pathrecon.Query) (pathrecon.Match, bool) {
	if page == nil {
		return pathrecon.Match{}, false
	}
	normalized := pathrecon.NormalizeQueries([]pathrecon.Query{q})
	if len(normalized) == 0 {
		return pathrecon.Match{}, false
	}
	quote := strings.ToLower(normalized[0].Normalized)
	pt := newPageText(page)
	if PartialRatio(quote, pt.full) < m.threshold() {
		return pathrecon.Match{}, false
	}
	return m.align(page.Number, pt.words, quote)
}

// pageText is the lower-cased reconstruction of a page used for scanning.
type pageText struct {
	words []string
	full  string
}

func newPageText(p *pathrecon.Page) pageText {
	words := make([]string, len(p.Words))
	for i, w := range p.Words {
		words[i] = strings.ToLower(w.Text)
	}
	return pageText{words: words, full: strings.Join(words, " ")}
}

// align scans every window of the page's words and returns the best-scoring
// span if it clears the threshold. Iteration is start index ascending, then
// window size ascending; the strictly-greater comparison means the first
// window to reach the maximum score wins.
func (m *Matcher) align(pageNumber int, words []string, quote string) (pathrecon.Match, bool) {
	tokens := len(strings.Fields(quote))
	minSize := tokens - m.minSlack()
	if minSize < 1 {
		minSize = 1
	}
	maxSize := tokens + m.maxSlack()

	best := -1.0
	var bestStart, bestEnd int
	for i := range words {
		if i+minSize > len(words) {
			break
		}
		window := strings.Join(words[i:i+minSize], " ")
		for size := minSize; size <= maxSize && i+size <= len(words); size++ {
			if size > minSize {
				window += " " + words[i+size-1]
			}
			if score := Ratio(quote, window); score > best {
				best = score
				bestStart, bestEnd = i, i+size
			}
		}
	}

	if best < m.threshold() {
		return pathrecon.Match{}, false
	}
	return pathrecon.Match{Page: pageNumber, Start: bestStart, End: bestEnd, Score: best}, true
}

func (m *Matcher) threshold() float64 {
	if m.Threshold == 0 {
		return DefaultThreshold
	}
	return m.Threshold
}

func (m *Matcher) minSlack() int {
	if m.MinSlack == 0 {
		return DefaultMinSlack
	}
	return m.MinSlack
}

func (m *Matcher) maxSlack() int {
	if m.MaxSlack == 0 {
		return DefaultMaxSlack
	}
	return m.MaxSlack
}
