// Package aggregate groups flat scored cards into category collections.
package aggregate

import (
	"fmt"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
)

// Filter decides whether a score survives aggregation.
type Filter func(score float64) bool

// MinScore keeps scores at or above min.
func MinScore(minScore float64) Filter {
	return func(score float64) bool { return score >= minScore }
}

// KeepAll keeps every score, including zero and negative ones.
func KeepAll() Filter {
	return func(float64) bool { return true }
}

// Aggregate filters cards, buckets them by category and builds one collection per
// category. Category order and card order follow first occurrence in cards.
// An empty input, or one filtered to nothing, yields an empty result.
func Aggregate[P card.Payload](cards []*card.Card[P], keep Filter) ([]*collection.Collection[P], error) {
	if keep == nil {
		keep = KeepAll()
	}

	var order []string
	buckets := make(map[string][]*card.Card[P])
	for _, c := range cards {
		if !keep(c.Score()) {
			continue
		}
		key := c.Category()
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], c)
	}

	out := make([]*collection.Collection[P], 0, len(order))
	for _, key := range order {
		col, err := collection.New(key, buckets[key])
		if err != nil {
			return nil, fmt.Errorf("aggregate category %q: %w", key, err)
		}
		out = append(out, col)
	}
	return out, nil
}
