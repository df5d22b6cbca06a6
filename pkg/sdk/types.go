package cardex

import (
	"time"

	"github.com/kailas-cloud/cardex/internal/domain/collection"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
)

// Command kinds reported in Result.Kind.
const (
	KindEmpty              = "empty"
	KindSearchArticles     = "search_articles"
	KindExploreArticles    = "explore_articles"
	KindOpenArticle        = "open_article"
	KindSearchRestaurants  = "search_restaurants"
	KindExploreRestaurants = "explore_restaurants"
	KindOpenRestaurant     = "open_restaurant"
)

// Session describes what a session currently holds.
type Session struct {
	ID                   string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	ArticleCategories    []string
	RestaurantCategories []string
	Explored             string // empty when nothing is explored
}

// Answer is one extracted answer to a question.
type Answer struct {
	Text        string
	Score       float64
	SourceTitle string
	SourceURL   string
}

// ArticleCategory summarizes one article category by its top card.
type ArticleCategory struct {
	Key      string
	Count    int
	TopTitle string
	TopURL   string
}

// RestaurantCategory summarizes one restaurant category by its top card.
type RestaurantCategory struct {
	Key        string
	Count      int
	TopName    string
	TopURL     string
	TopScore   float64
	TopPreview string
}

// Entry is one card of an explored category.
type Entry struct {
	Index   int
	Title   string
	URL     string
	Score   float64
	Preview string
}

// Collection is an explored category.
type Collection struct {
	Key     string
	Entries []Entry
}

// Concept is an entity linked to an opened article.
type Concept struct {
	Title string
	Label string
	URL   string
}

// Article is an opened article with its linked concepts.
type Article struct {
	Category string
	Score    float64
	Title    string
	URL      string
	Summary  string
	About    string
	Topics   []string
	Tags     []string
	Concepts []Concept
}

// Result is the outcome of one command. Only the fields of its kind are set.
type Result struct {
	Kind    string
	Query   string
	Answers []Answer

	// Search.
	Articles    []ArticleCategory
	Restaurants []RestaurantCategory
	Total       int
	NoResults   bool

	// Explore.
	Collection *Collection

	// Open.
	Article *Article
}

func sessionFromSnapshot(s commanduc.Snapshot) Session {
	return Session{
		ID:                   s.ID,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
		ArticleCategories:    s.ArticleCategories,
		RestaurantCategories: s.RestaurantCategories,
		Explored:             s.Explored,
	}
}

func resultFromOutcome(out commanduc.Outcome) Result {
	res := Result{Kind: out.Command.Kind.String(), Query: out.Command.Raw, NoResults: out.NoResults}

	for _, a := range out.Answers {
		res.Answers = append(res.Answers, Answer{
			Text:        a.Text,
			Score:       a.Score,
			SourceTitle: a.Source.Title,
			SourceURL:   a.Source.URL,
		})
	}

	switch {
	case out.Articles != nil:
		res.Total = collection.Total(out.Articles)
		for _, s := range commanduc.SummarizeArticles(out.Articles) {
			res.Articles = append(res.Articles, ArticleCategory(s))
		}
	case out.Restaurants != nil:
		res.Total = collection.Total(out.Restaurants)
		for _, s := range commanduc.SummarizeRestaurants(out.Restaurants) {
			res.Restaurants = append(res.Restaurants, RestaurantCategory(s))
		}
	case out.ArticleCollection != nil:
		res.Collection = toCollection(out.ArticleCollection.Key(), commanduc.ArticleEntries(out.ArticleCollection))
	case out.RestaurantCollection != nil:
		res.Collection = toCollection(out.RestaurantCollection.Key(), commanduc.RestaurantEntries(out.RestaurantCollection))
	case out.Opened != nil:
		a := out.Opened.Payload()
		concepts := make([]Concept, len(out.Concepts))
		for i, c := range out.Concepts {
			concepts[i] = Concept(c)
		}
		res.Article = &Article{
			Category: out.Opened.CollectionKey(),
			Score:    out.Opened.Score(),
			Title:    a.Title,
			URL:      a.URL,
			Summary:  a.Summary,
			About:    a.About,
			Topics:   a.Topics,
			Tags:     a.Tags,
			Concepts: concepts,
		}
	}
	return res
}

func toCollection(key string, entries []commanduc.Entry) *Collection {
	col := &Collection{Key: key, Entries: make([]Entry, len(entries))}
	for i, e := range entries {
		col.Entries[i] = Entry(e)
	}
	return col
}
