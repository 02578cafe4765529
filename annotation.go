package pathrecon

// Match is an accepted alignment of a query against a page: an
// inclusive-exclusive token index span and its similarity score in [0,100].
type Match struct {
	Page  int     `json:"page"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"`
}

// Annotation is one positioned highlight record tied to a single document
// word. Quote is a byte-exact copy of the originating query's text; the
// rendering layer keys its "jump to quote" interaction on exact equality.
type Annotation struct {
	Page   int     `json:"page"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
	Quote  string  `json:"quote"`
}

// Locator locates queries in a document and emits positioned annotations.
// Locate is a pure, deterministic computation: identical inputs produce
// identical output, the inputs are read-only for the duration of the call,
// and nothing is persisted across invocations. Callers may run one document
// per goroutine without coordination.
type Locator interface {
	Locate(doc *Document, queries []Query) []Annotation
}
