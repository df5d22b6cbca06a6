// Package card holds the scored result item returned by a search backend.
package card

import (
	"slices"

	"github.com/kailas-cloud/cardex/internal/domain/tree"
)

// Payload is the domain-specific content of a card.
type Payload interface {
	// Category returns the grouping key the card is aggregated under.
	Category() string
}

// Card is a single scored backend result. It is a leaf of a result tree.
// Everything except the enrichment is immutable after construction.
type Card[P Payload] struct {
	query    string
	score    float64
	payload  P
	node     *tree.Node[*Card[P]]
	state    EnrichmentState
	concepts []Concept
}

// New creates an unenriched card for a result of query.
func New[P Payload](query string, score float64, payload P) *Card[P] {
	c := &Card[P]{query: query, score: score, payload: payload}
	c.node = tree.NewLeaf(c)
	return c
}

// Reconstruct creates a card with a known enrichment state (storage hydration).
func Reconstruct[P Payload](
	query string, score float64, payload P, state EnrichmentState, concepts []Concept,
) *Card[P] {
	c := New(query, score, payload)
	c.state = state
	if state == Linked {
		c.concepts = slices.Clone(concepts)
	}
	return c
}

// Query returns the search query that produced the card.
func (c *Card[P]) Query() string { return c.query }

// Score returns the backend-assigned relevance score.
func (c *Card[P]) Score() float64 { return c.score }

// Payload returns the domain content.
func (c *Card[P]) Payload() P { return c.payload }

// Category returns the grouping key of the payload.
func (c *Card[P]) Category() string { return c.payload.Category() }

// Node returns the tree leaf backing the card.
func (c *Card[P]) Node() *tree.Node[*Card[P]] { return c.node }

// CollectionKey returns the key of the collection the card belongs to, or "" if detached.
func (c *Card[P]) CollectionKey() string {
	if p := c.node.Parent(); p != nil {
		return p.Key()
	}
	return ""
}
