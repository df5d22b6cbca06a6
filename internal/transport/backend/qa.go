package backend

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/qa"
)

// QAClient calls the question answering service.
type QAClient struct {
	caller   caller
	endpoint string
}

// NewQAClient creates a QA client.
func NewQAClient(endpoint string, opts Options) *QAClient {
	return &QAClient{caller: newCaller(opts), endpoint: endpoint}
}

// Answer returns answers in backend order.
func (c *QAClient) Answer(ctx context.Context, question string, numResults, numReader int) ([]qa.Answer, error) {
	var resp qaResponse
	req := qaRequest{Query: question, NumResults: numResults, NumReader: numReader}
	if err := c.caller.postJSON(ctx, NameQA, c.endpoint, req, &resp); err != nil {
		return nil, err
	}

	answers := make([]qa.Answer, len(resp.Result))
	for i, h := range resp.Result {
		answers[i] = qa.Answer{
			Text:  h.Answer,
			Score: h.Score,
			Source: qa.Source{
				Title:   h.Card.Title,
				URL:     h.Card.URL,
				Summary: h.Card.Summary,
			},
		}
	}
	return answers, nil
}
