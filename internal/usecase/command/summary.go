package command

import (
	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
	"github.com/kailas-cloud/cardex/internal/domain/session"
)

// ArticleSummary describes one article category by its top card.
type ArticleSummary struct {
	Key      string
	Count    int
	TopTitle string
	TopURL   string
}

// RestaurantSummary describes one restaurant category by its top card.
type RestaurantSummary struct {
	Key        string
	Count      int
	TopName    string
	TopURL     string
	TopScore   float64
	TopPreview string
}

// Entry is one child of an explored collection.
type Entry struct {
	Index   int
	Title   string
	URL     string
	Score   float64
	Preview string
}

// SummarizeArticle summarizes a single article collection.
func SummarizeArticle(c *collection.Collection[article.Article]) ArticleSummary {
	top := c.Top().Payload()
	return ArticleSummary{Key: c.Key(), Count: c.Len(), TopTitle: top.Title, TopURL: top.URL}
}

// SummarizeArticles summarizes every collection of set in order.
func SummarizeArticles(set session.ArticleSet) []ArticleSummary {
	out := make([]ArticleSummary, len(set))
	for i, c := range set {
		out[i] = SummarizeArticle(c)
	}
	return out
}

// SummarizeRestaurant summarizes a single restaurant collection.
func SummarizeRestaurant(c *collection.Collection[restaurant.Restaurant]) RestaurantSummary {
	top := c.Top()
	r := top.Payload()
	return RestaurantSummary{
		Key:        c.Key(),
		Count:      c.Len(),
		TopName:    r.Name,
		TopURL:     r.URL,
		TopScore:   top.Score(),
		TopPreview: r.Preview(),
	}
}

// SummarizeRestaurants summarizes every collection of set in order.
func SummarizeRestaurants(set session.RestaurantSet) []RestaurantSummary {
	out := make([]RestaurantSummary, len(set))
	for i, c := range set {
		out[i] = SummarizeRestaurant(c)
	}
	return out
}

// ArticleEntries lists the articles of c with their indexes.
func ArticleEntries(c *collection.Collection[article.Article]) []Entry {
	cards := c.Cards()
	out := make([]Entry, len(cards))
	for i, cd := range cards {
		a := cd.Payload()
		out[i] = Entry{Index: i, Title: a.Title, URL: a.URL, Score: cd.Score()}
	}
	return out
}

// RestaurantEntries lists the restaurants of c with their indexes.
func RestaurantEntries(c *collection.Collection[restaurant.Restaurant]) []Entry {
	cards := c.Cards()
	out := make([]Entry, len(cards))
	for i, cd := range cards {
		r := cd.Payload()
		out[i] = Entry{Index: i, Title: r.Name, URL: r.URL, Score: cd.Score(), Preview: r.Preview()}
	}
	return out
}
