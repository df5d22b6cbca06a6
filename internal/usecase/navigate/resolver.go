package navigate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
)

// ResolveCategory finds the collection referenced by arg. Passes run in order and
// the first collection matching a pass wins:
//  1. case-insensitive, trimmed equality
//  2. equality with all spaces removed on both sides
//  3. the collection key starts with arg
func ResolveCategory[P card.Payload](
	arg string, set []*collection.Collection[P],
) (*collection.Collection[P], error) {
	ref := collection.NormalizeKey(arg)
	if ref == "" {
		return nil, fmt.Errorf("empty category reference: %w", domain.ErrNotFound)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("category %q: %w", arg, domain.ErrNotFound)
	}

	for _, c := range set {
		if collection.NormalizeKey(c.Key()) == ref {
			return c, nil
		}
	}

	compact := collection.CompactKey(ref)
	for _, c := range set {
		if collection.CompactKey(c.Key()) == compact {
			return c, nil
		}
	}

	for _, c := range set {
		if strings.HasPrefix(collection.NormalizeKey(c.Key()), ref) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("category %q: %w", arg, domain.ErrNotFound)
}

// ResolveLeaf returns the card at the base-10 index in arg.
// A non-numeric argument is ErrInvalidQuery; an index outside [0, len) is ErrNotFound.
func ResolveLeaf[P card.Payload](arg string, cards []*card.Card[P]) (*card.Card[P], error) {
	ref := strings.TrimSpace(arg)
	if ref == "" {
		return nil, fmt.Errorf("empty card index: %w", domain.ErrInvalidQuery)
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return nil, fmt.Errorf("card index %q is not a number: %w", ref, domain.ErrInvalidQuery)
	}
	if idx < 0 || idx >= len(cards) {
		return nil, fmt.Errorf("card index %d out of range [0,%d): %w", idx, len(cards), domain.ErrNotFound)
	}
	return cards[idx], nil
}
