package card

import (
	"context"
	"slices"
	"strings"
)

// Concept is a related-concept annotation produced by entity linking.
type Concept struct {
	Title string
	Label string
	URL   string
}

// EnrichmentState tracks concept materialization for a card.
type EnrichmentState int

const (
	// Unmaterialized means enrichment has never been attempted.
	Unmaterialized EnrichmentState = iota
	// Linked means concepts were fetched and cached.
	Linked
	// Empty means the attempt failed or found nothing. It is terminal.
	Empty
)

// String returns the state name used in storage.
func (s EnrichmentState) String() string {
	switch s {
	case Linked:
		return "linked"
	case Empty:
		return "empty"
	default:
		return "unmaterialized"
	}
}

// ParseEnrichmentState is the inverse of EnrichmentState.String.
// Unknown names map to Unmaterialized.
func ParseEnrichmentState(s string) EnrichmentState {
	switch s {
	case "linked":
		return Linked
	case "empty":
		return Empty
	default:
		return Unmaterialized
	}
}

// TextSource is implemented by payloads that support enrichment.
type TextSource interface {
	EnrichmentText() string
}

// Linker resolves free text into related concepts.
type Linker interface {
	Link(ctx context.Context, text string) ([]Concept, error)
}

// EnrichmentState returns the current materialization state.
func (c *Card[P]) EnrichmentState() EnrichmentState { return c.state }

// Concepts returns the cached concepts. Empty until materialized.
func (c *Card[P]) Concepts() []Concept { return slices.Clone(c.concepts) }

// Enrich materializes related concepts at most once. A failed or empty lookup is
// cached as Empty and never retried. Payloads without a TextSource are left untouched.
func (c *Card[P]) Enrich(ctx context.Context, linker Linker) []Concept {
	if c.state != Unmaterialized {
		return c.Concepts()
	}
	src, ok := any(c.payload).(TextSource)
	if !ok {
		return nil
	}

	concepts, err := linker.Link(ctx, NormalizeText(src.EnrichmentText()))
	if err != nil || len(concepts) == 0 {
		c.state = Empty
		c.concepts = nil
		return nil
	}

	c.state = Linked
	c.concepts = slices.Clone(concepts)
	return c.Concepts()
}

// NormalizeText turns newlines into spaces and collapses runs of spaces.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
