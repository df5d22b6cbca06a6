package backend

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/card"
)

// DefaultLinkThreshold is the entity linking confidence threshold.
const DefaultLinkThreshold = 0.8

// LinkerClient calls the entity linking service.
type LinkerClient struct {
	caller    caller
	endpoint  string
	threshold float64
	coref     bool
}

// NewLinkerClient creates an entity linking client.
func NewLinkerClient(endpoint string, threshold float64, coref bool, opts Options) *LinkerClient {
	return &LinkerClient{caller: newCaller(opts), endpoint: endpoint, threshold: threshold, coref: coref}
}

// Link returns the entities found in text reduced to title, label and URL.
func (c *LinkerClient) Link(ctx context.Context, text string) ([]card.Concept, error) {
	var resp linkResponse
	req := linkRequest{Text: text, Threshold: c.threshold, Coref: c.coref}
	if err := c.caller.postJSON(ctx, NameLinker, c.endpoint, req, &resp); err != nil {
		return nil, err
	}

	concepts := make([]card.Concept, len(resp.Entities))
	for i, e := range resp.Entities {
		concepts[i] = card.Concept{Title: e.Title, Label: e.Label, URL: e.URL}
	}
	return concepts, nil
}
