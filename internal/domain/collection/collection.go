// Package collection implements the category node of a search result set.
package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/tree"
)

// ErrEmpty is returned when a collection would have no cards.
var ErrEmpty = errors.New("collection: no cards")

// Collection groups same-category cards and caches the top-ranked one.
// It is immutable after construction.
type Collection[P card.Payload] struct {
	node   *tree.Node[*card.Card[P]]
	top    *card.Card[P]
	topIdx int
}

// New attaches cards in order under key and computes the top-ranked card.
// Ties keep the first card reaching the maximum score.
func New[P card.Payload](key string, cards []*card.Card[P]) (*Collection[P], error) {
	if len(cards) == 0 {
		return nil, ErrEmpty
	}

	topIdx := 0
	for i := 1; i < len(cards); i++ {
		if cards[i].Score() > cards[topIdx].Score() {
			topIdx = i
		}
	}
	return build(key, cards, topIdx)
}

// Reconstruct rebuilds a collection with a known top index (storage hydration).
func Reconstruct[P card.Payload](key string, cards []*card.Card[P], topIdx int) (*Collection[P], error) {
	if len(cards) == 0 {
		return nil, ErrEmpty
	}
	if topIdx < 0 || topIdx >= len(cards) {
		return nil, fmt.Errorf("collection %q: top index %d out of range [0,%d)", key, topIdx, len(cards))
	}
	return build(key, cards, topIdx)
}

func build[P card.Payload](key string, cards []*card.Card[P], topIdx int) (*Collection[P], error) {
	node := tree.NewComposite[*card.Card[P]](key)
	for _, c := range cards {
		if err := node.Add(c.Node()); err != nil {
			return nil, fmt.Errorf("collection %q: attach card: %w", key, err)
		}
	}
	return &Collection[P]{node: node, top: cards[topIdx], topIdx: topIdx}, nil
}

// Key returns the category key in its original form.
func (c *Collection[P]) Key() string { return c.node.Key() }

// Len returns the number of cards.
func (c *Collection[P]) Len() int { return c.node.Len() }

// Top returns the top-ranked card.
func (c *Collection[P]) Top() *card.Card[P] { return c.top }

// TopIndex returns the position of the top-ranked card.
func (c *Collection[P]) TopIndex() int { return c.topIdx }

// Node returns the composite backing the collection.
func (c *Collection[P]) Node() *tree.Node[*card.Card[P]] { return c.node }

// Cards returns the cards in insertion order.
func (c *Collection[P]) Cards() []*card.Card[P] {
	children := c.node.Children()
	out := make([]*card.Card[P], len(children))
	for i, n := range children {
		out[i] = n.Value()
	}
	return out
}

// Total returns the number of cards across all collections.
func Total[P card.Payload](set []*Collection[P]) int {
	n := 0
	for _, c := range set {
		n += c.Len()
	}
	return n
}

// NormalizeKey lower-cases and trims a key for matching.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CompactKey is NormalizeKey with all whitespace removed.
func CompactKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
