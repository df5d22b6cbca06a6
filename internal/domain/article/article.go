// Package article holds the payload of an article search result.
package article

// DefaultMinScore is the relevance threshold applied to article results.
const DefaultMinScore = 0.65

// Meta is the article metadata reported by the search backend.
type Meta struct {
	Code   string
	Length string
}

// Article is the payload of an article card.
type Article struct {
	Kind          string // grouping category: article, blog, how-to, ...
	Title         string
	URL           string
	Image         string
	Summary       string
	SummaryPrefix string
	About         string
	Date          string
	NumVotes      int
	NumResponses  int
	Topics        []string
	Tags          []string
	Meta          Meta
}

// Category implements card.Payload.
func (a Article) Category() string { return a.Kind }

// EnrichmentText implements card.TextSource.
func (a Article) EnrichmentText() string { return a.SummaryPrefix + "\n" + a.Summary }

// Engine selects the article search endpoint.
type Engine string

const (
	// Keyword is the BM25 engine.
	Keyword Engine = "keyword"
	// Dense is the dense passage retrieval engine.
	Dense Engine = "dense"
	// Mix blends keyword and dense retrieval.
	Mix Engine = "mix"
)

// Valid reports whether e is a known engine.
func (e Engine) Valid() bool {
	switch e {
	case Keyword, Dense, Mix:
		return true
	}
	return false
}

// RequestSize returns how many results to ask the engine for.
// The mix engine returns results from both retrievers, so it is asked for half.
func (e Engine) RequestSize(numResults int) int {
	if e != Mix {
		return numResults
	}
	if n := numResults / 2; n > 0 {
		return n
	}
	return 1
}
