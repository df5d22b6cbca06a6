package session

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
	domsess "github.com/kailas-cloud/cardex/internal/domain/session"
)

type sessionDoc struct {
	ID          string                         `json:"id"`
	CreatedAt   time.Time                      `json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
	Explored    int                            `json:"explored"`
	Articles    []collectionDoc[articleDoc]    `json:"articles,omitempty"`
	Restaurants []collectionDoc[restaurantDoc] `json:"restaurants,omitempty"`
}

type collectionDoc[T any] struct {
	Key   string       `json:"key"`
	Top   int          `json:"top"`
	Cards []cardDoc[T] `json:"cards"`
}

type cardDoc[T any] struct {
	Query    string       `json:"query"`
	Score    float64      `json:"score"`
	State    string       `json:"state"`
	Concepts []conceptDoc `json:"concepts,omitempty"`
	Payload  T            `json:"payload"`
}

type conceptDoc struct {
	Title string `json:"title"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type articleDoc struct {
	Kind          string   `json:"kind"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Image         string   `json:"image,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	SummaryPrefix string   `json:"summary_prefix,omitempty"`
	About         string   `json:"about,omitempty"`
	Date          string   `json:"date,omitempty"`
	NumVotes      int      `json:"num_votes,omitempty"`
	NumResponses  int      `json:"num_responses,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	MetaCode      string   `json:"meta_code,omitempty"`
	MetaLength    string   `json:"meta_length,omitempty"`
}

type restaurantDoc struct {
	Name       string         `json:"name"`
	URL        string         `json:"url"`
	Rating     float64        `json:"rating,omitempty"`
	Price      string         `json:"price,omitempty"`
	City       string         `json:"city,omitempty"`
	NumReviews int            `json:"num_reviews,omitempty"`
	Categories []string       `json:"categories,omitempty"`
	Review     string         `json:"review,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

func newSessionDoc(s *domsess.Session) sessionDoc {
	arts, _ := s.Articles()
	rests, _ := s.Restaurants()
	return sessionDoc{
		ID:          s.ID(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
		Explored:    s.ExploredIndex(),
		Articles:    encodeSet(arts, encodeArticle),
		Restaurants: encodeSet(rests, encodeRestaurant),
	}
}

func (d sessionDoc) toDomain() (*domsess.Session, error) {
	arts, err := decodeSet(d.Articles, decodeArticle)
	if err != nil {
		return nil, fmt.Errorf("articles: %w", err)
	}
	rests, err := decodeSet(d.Restaurants, decodeRestaurant)
	if err != nil {
		return nil, fmt.Errorf("restaurants: %w", err)
	}
	return domsess.Reconstruct(d.ID, d.CreatedAt, d.UpdatedAt, arts, rests, d.Explored), nil
}

func encodeSet[P card.Payload, T any](
	set []*collection.Collection[P], enc func(P) T,
) []collectionDoc[T] {
	if len(set) == 0 {
		return nil
	}
	out := make([]collectionDoc[T], len(set))
	for i, c := range set {
		cards := c.Cards()
		docs := make([]cardDoc[T], len(cards))
		for j, cc := range cards {
			docs[j] = cardDoc[T]{
				Query:    cc.Query(),
				Score:    cc.Score(),
				State:    cc.EnrichmentState().String(),
				Concepts: encodeConcepts(cc.Concepts()),
				Payload:  enc(cc.Payload()),
			}
		}
		out[i] = collectionDoc[T]{Key: c.Key(), Top: c.TopIndex(), Cards: docs}
	}
	return out
}

func decodeSet[P card.Payload, T any](
	docs []collectionDoc[T], dec func(T) P,
) ([]*collection.Collection[P], error) {
	out := make([]*collection.Collection[P], 0, len(docs))
	for _, d := range docs {
		cards := make([]*card.Card[P], len(d.Cards))
		for i, cd := range d.Cards {
			cards[i] = card.Reconstruct(
				cd.Query, cd.Score, dec(cd.Payload),
				card.ParseEnrichmentState(cd.State), decodeConcepts(cd.Concepts),
			)
		}
		c, err := collection.Reconstruct(d.Key, cards, d.Top)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func encodeConcepts(cs []card.Concept) []conceptDoc {
	if len(cs) == 0 {
		return nil
	}
	out := make([]conceptDoc, len(cs))
	for i, c := range cs {
		out[i] = conceptDoc(c)
	}
	return out
}

func decodeConcepts(docs []conceptDoc) []card.Concept {
	out := make([]card.Concept, len(docs))
	for i, d := range docs {
		out[i] = card.Concept(d)
	}
	return out
}

func encodeArticle(a article.Article) articleDoc {
	return articleDoc{
		Kind:          a.Kind,
		Title:         a.Title,
		URL:           a.URL,
		Image:         a.Image,
		Summary:       a.Summary,
		SummaryPrefix: a.SummaryPrefix,
		About:         a.About,
		Date:          a.Date,
		NumVotes:      a.NumVotes,
		NumResponses:  a.NumResponses,
		Topics:        a.Topics,
		Tags:          a.Tags,
		MetaCode:      a.Meta.Code,
		MetaLength:    a.Meta.Length,
	}
}

func decodeArticle(d articleDoc) article.Article {
	return article.Article{
		Kind:          d.Kind,
		Title:         d.Title,
		URL:           d.URL,
		Image:         d.Image,
		Summary:       d.Summary,
		SummaryPrefix: d.SummaryPrefix,
		About:         d.About,
		Date:          d.Date,
		NumVotes:      d.NumVotes,
		NumResponses:  d.NumResponses,
		Topics:        d.Topics,
		Tags:          d.Tags,
		Meta:          article.Meta{Code: d.MetaCode, Length: d.MetaLength},
	}
}

func encodeRestaurant(r restaurant.Restaurant) restaurantDoc {
	return restaurantDoc(r)
}

func decodeRestaurant(d restaurantDoc) restaurant.Restaurant {
	return restaurant.Restaurant(d)
}
