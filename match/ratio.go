package match

import "github.com/xrash/smetrics"

// Ratio returns a symmetric similarity between two whole strings in [0,100].
// It is derived from the indel edit distance: insertions and deletions cost
// 1, substitutions cost 2, so a substitution is never cheaper than a delete
// plus an insert. The distance is normalized by the combined length.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 100
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 100 * (1 - float64(dist)/float64(len(a)+len(b)))
}

// PartialRatio returns how well the best-aligned substring of text matches
// quote, in [0,100]: the minimum unit-cost edit distance between quote and
// any substring of text, normalized by quote length. Unlike Ratio it is not
// symmetric; text is free to be much longer than quote without penalty.
//
// The free start and free end of the substring alignment have no equivalent
// in smetrics, so this one runs its own two-row dynamic program: row zero is
// all zeros (a match may begin at any text offset) and the result is the
// minimum over the final row (a match may end at any text offset).
func PartialRatio(quote, text string) float64 {
	m := len(quote)
	if m == 0 {
		return 100
	}
	n := len(text)
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if quote[i-1] == text[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if v := prev[j] + 1; v < d {
				d = v
			}
			if v := cur[j-1] + 1; v < d {
				d = v
			}
			cur[j] = d
		}
		prev, cur = cur, prev
	}
	best := prev[0]
	for _, d := range prev[1:] {
		if d < best {
			best = d
		}
	}
	return 100 * (1 - float64(best)/float64(m))
}
