package chi

import (
	"time"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	"github.com/kailas-cloud/cardex/internal/domain/qa"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
)

const noResultsMessage = "no results"

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type commandRequest struct {
	Query string `json:"query"`
}

type sessionResponse struct {
	ID                   string    `json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
	ArticleCategories    []string  `json:"article_categories"`
	RestaurantCategories []string  `json:"restaurant_categories"`
	Explored             *string   `json:"explored,omitempty"`
}

type commandResponse struct {
	Kind        string              `json:"kind"`
	Query       string              `json:"query"`
	Message     string              `json:"message,omitempty"`
	Answers     []answerView        `json:"answers,omitempty"`
	Total       *int                `json:"total,omitempty"`
	Articles    []articleSummary    `json:"articles,omitempty"`
	Restaurants []restaurantSummary `json:"restaurants,omitempty"`
	Collection  *collectionView     `json:"collection,omitempty"`
	Article     *articleView        `json:"article,omitempty"`
}

type answerView struct {
	Text   string     `json:"text"`
	Score  float64    `json:"score"`
	Source sourceView `json:"source"`
}

type sourceView struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

type articleSummary struct {
	Key      string `json:"key"`
	Count    int    `json:"count"`
	TopTitle string `json:"top_title"`
	TopURL   string `json:"top_url"`
}

type restaurantSummary struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	TopName    string  `json:"top_name"`
	TopURL     string  `json:"top_url"`
	TopScore   float64 `json:"top_score"`
	TopPreview string  `json:"top_preview"`
}

type collectionView struct {
	Key     string      `json:"key"`
	Entries []entryView `json:"entries"`
}

type entryView struct {
	Index   int     `json:"index"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
	Preview string  `json:"preview,omitempty"`
}

type articleView struct {
	Category      string        `json:"category"`
	Score         float64       `json:"score"`
	Title         string        `json:"title"`
	URL           string        `json:"url"`
	Image         string        `json:"image,omitempty"`
	SummaryPrefix string        `json:"summary_prefix,omitempty"`
	Summary       string        `json:"summary"`
	About         string        `json:"about,omitempty"`
	Date          string        `json:"date,omitempty"`
	NumVotes      int           `json:"num_votes"`
	NumResponses  int           `json:"num_responses"`
	Topics        []string      `json:"topics"`
	Tags          []string      `json:"tags"`
	Code          string        `json:"code,omitempty"`
	Length        string        `json:"length,omitempty"`
	Concepts      []conceptView `json:"concepts"`
}

type conceptView struct {
	Title string `json:"title"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

func snapshotToResponse(s commanduc.Snapshot) sessionResponse {
	resp := sessionResponse{
		ID:                   s.ID,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
		ArticleCategories:    nonNil(s.ArticleCategories),
		RestaurantCategories: nonNil(s.RestaurantCategories),
	}
	if s.HasExplored {
		key := s.Explored
		resp.Explored = &key
	}
	return resp
}

func outcomeToResponse(out commanduc.Outcome) commandResponse {
	resp := commandResponse{Kind: out.Command.Kind.String(), Query: out.Command.Raw}

	if len(out.Answers) > 0 {
		resp.Answers = answersToView(out.Answers)
	}

	switch {
	case out.NoResults:
		zero := 0
		resp.Total = &zero
		resp.Message = noResultsMessage
	case out.Articles != nil:
		total := collection.Total(out.Articles)
		resp.Total = &total
		for _, s := range commanduc.SummarizeArticles(out.Articles) {
			resp.Articles = append(resp.Articles, articleSummary(s))
		}
	case out.Restaurants != nil:
		total := collection.Total(out.Restaurants)
		resp.Total = &total
		for _, s := range commanduc.SummarizeRestaurants(out.Restaurants) {
			resp.Restaurants = append(resp.Restaurants, restaurantSummary(s))
		}
	case out.ArticleCollection != nil:
		resp.Collection = &collectionView{
			Key:     out.ArticleCollection.Key(),
			Entries: entriesToView(commanduc.ArticleEntries(out.ArticleCollection)),
		}
	case out.RestaurantCollection != nil:
		resp.Collection = &collectionView{
			Key:     out.RestaurantCollection.Key(),
			Entries: entriesToView(commanduc.RestaurantEntries(out.RestaurantCollection)),
		}
	case out.Opened != nil:
		resp.Article = openedToView(out)
	}
	return resp
}

func answersToView(answers []qa.Answer) []answerView {
	out := make([]answerView, len(answers))
	for i, a := range answers {
		out[i] = answerView{Text: a.Text, Score: a.Score, Source: sourceView(a.Source)}
	}
	return out
}

func entriesToView(entries []commanduc.Entry) []entryView {
	out := make([]entryView, len(entries))
	for i, e := range entries {
		out[i] = entryView(e)
	}
	return out
}

func openedToView(out commanduc.Outcome) *articleView {
	c := out.Opened
	a := c.Payload()
	return &articleView{
		Category:      c.CollectionKey(),
		Score:         c.Score(),
		Title:         a.Title,
		URL:           a.URL,
		Image:         a.Image,
		SummaryPrefix: a.SummaryPrefix,
		Summary:       a.Summary,
		About:         a.About,
		Date:          a.Date,
		NumVotes:      a.NumVotes,
		NumResponses:  a.NumResponses,
		Topics:        nonNil(a.Topics),
		Tags:          nonNil(a.Tags),
		Code:          a.Meta.Code,
		Length:        a.Meta.Length,
		Concepts:      conceptsToView(out.Concepts),
	}
}

func conceptsToView(concepts []card.Concept) []conceptView {
	out := make([]conceptView, len(concepts))
	for i, c := range concepts {
		out[i] = conceptView(c)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
