package backend

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
)

// ArticleClient calls the article search engines.
type ArticleClient struct {
	caller    caller
	endpoints map[article.Engine]string
}

// NewArticleClient creates a client; endpoints maps each engine to its URL.
func NewArticleClient(endpoints map[article.Engine]string, opts Options) *ArticleClient {
	return &ArticleClient{caller: newCaller(opts), endpoints: endpoints}
}

// SearchArticles returns one card per hit in backend order.
func (c *ArticleClient) SearchArticles(
	ctx context.Context, engine article.Engine, query string, numResults int,
) ([]*card.Card[article.Article], error) {
	endpoint, ok := c.endpoints[engine]
	if !ok || endpoint == "" {
		return nil, fmt.Errorf("no endpoint for engine %q", engine)
	}

	var resp articleResponse
	req := searchRequest{Query: query, NumResults: numResults}
	if err := c.caller.postJSON(ctx, NameArticles, endpoint, req, &resp); err != nil {
		return nil, err
	}

	cards := make([]*card.Card[article.Article], len(resp.Result))
	for i, h := range resp.Result {
		cards[i] = card.New(query, h.Score, h.toArticle())
	}
	return cards, nil
}

func (h articleHit) toArticle() article.Article {
	var topics, tags []string
	for _, t := range h.Topics {
		topics = append(topics, t.Topic)
	}
	for _, t := range h.TagsRank {
		tags = append(tags, t.Word)
	}
	return article.Article{
		Kind:          h.Category,
		Title:         h.Title,
		URL:           h.URL,
		Image:         h.Image,
		Summary:       h.Summary,
		SummaryPrefix: h.SummaryPrefix,
		About:         h.Concept,
		Date:          h.Date,
		NumVotes:      h.NumVotes,
		NumResponses:  h.NumResponses,
		Topics:        topics,
		Tags:          tags,
		Meta:          article.Meta{Code: h.Meta.Code, Length: h.Meta.Length},
	}
}
