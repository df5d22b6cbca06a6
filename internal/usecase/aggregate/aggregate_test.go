package aggregate

import (
	"testing"

	"github.com/kailas-cloud/cardex/internal/domain/article"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
)

func art(kind, title string, score float64) *card.Card[article.Article] {
	return card.New("q", score, article.Article{Kind: kind, Title: title})
}

func res(cat, name string, score float64) *card.Card[restaurant.Restaurant] {
	return card.New("q", score, restaurant.Restaurant{Name: name, Categories: []string{cat}})
}

func TestAggregate_GroupsInFirstSeenOrder(t *testing.T) {
	cards := []*card.Card[article.Article]{
		art("News", "n1", 0.9),
		art("How To", "h1", 0.8),
		art("News", "n2", 0.95),
		art("Opinion", "o1", 0.7),
		art("How To", "h2", 0.66),
	}

	got, err := Aggregate(cards, MinScore(article.DefaultMinScore))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	wantKeys := []string{"News", "How To", "Opinion"}
	if len(got) != len(wantKeys) {
		t.Fatalf("expected %d collections, got %d", len(wantKeys), len(got))
	}
	for i, k := range wantKeys {
		if got[i].Key() != k {
			t.Errorf("collection %d: expected %q, got %q", i, k, got[i].Key())
		}
	}

	news := got[0].Cards()
	if news[0].Payload().Title != "n1" || news[1].Payload().Title != "n2" {
		t.Error("cards must keep arrival order within a category")
	}
	if got[0].Top().Payload().Title != "n2" {
		t.Errorf("expected n2 on top, got %q", got[0].Top().Payload().Title)
	}
}

func TestAggregate_ArticleThreshold(t *testing.T) {
	cards := []*card.Card[article.Article]{
		art("News", "keep", 0.65),
		art("News", "drop", 0.649),
		art("Blog", "drop", 0.1),
	}

	got, err := Aggregate(cards, MinScore(article.DefaultMinScore))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got) != 1 || got[0].Len() != 1 {
		t.Fatalf("expected one collection with one card, got %d collections", len(got))
	}
	if got[0].Cards()[0].Payload().Title != "keep" {
		t.Error("a score equal to the threshold must survive")
	}
}

func TestAggregate_RestaurantKeepsEverything(t *testing.T) {
	cards := []*card.Card[restaurant.Restaurant]{
		res("Bars", "a", 0),
		res("Bars", "b", -0.3),
		res("Sushi Bars", "c", 0.2),
	}

	got, err := Aggregate(cards, KeepAll())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	total := 0
	for _, c := range got {
		total += c.Len()
	}
	if total != len(cards) {
		t.Errorf("expected %d cards, got %d", len(cards), total)
	}
	if got[0].Top().Payload().Name != "a" {
		t.Errorf("expected a on top of Bars, got %q", got[0].Top().Payload().Name)
	}
}

func TestAggregate_NilFilterKeepsAll(t *testing.T) {
	got, err := Aggregate([]*card.Card[article.Article]{art("k", "a", 0.01)}, nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 collection, got %d", len(got))
	}
}

func TestAggregate_Empty(t *testing.T) {
	got, err := Aggregate[article.Article](nil, MinScore(article.DefaultMinScore))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}

	filtered, err := Aggregate([]*card.Card[article.Article]{art("k", "a", 0.1)}, MinScore(0.65))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 0 {
		t.Errorf("expected no collections, got %d", len(filtered))
	}
}

func TestAggregate_Properties(t *testing.T) {
	scores := []float64{0.3, 0.9, 0.7, 0.9, 0.66, 0.1, 0.8, 0.65, 1.0, 0.2}
	kinds := []string{"a", "b", "a", "c", "b", "a", "c", "c", "a", "b"}
	cards := make([]*card.Card[article.Article], len(scores))
	surviving := 0
	for i := range scores {
		cards[i] = art(kinds[i], "", scores[i])
		if scores[i] >= 0.65 {
			surviving++
		}
	}

	got, err := Aggregate(cards, MinScore(0.65))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	sum := 0
	for _, col := range got {
		sum += col.Len()
		maxScore := col.Cards()[0].Score()
		for _, c := range col.Cards() {
			if c.Score() > maxScore {
				maxScore = c.Score()
			}
		}
		if col.Top().Score() != maxScore {
			t.Errorf("%s: top score %v, max %v", col.Key(), col.Top().Score(), maxScore)
		}
		for _, c := range col.Cards() {
			if c.Score() == maxScore {
				if c != col.Top() {
					t.Errorf("%s: first maximal card must be top", col.Key())
				}
				break
			}
		}
	}
	if sum != surviving {
		t.Errorf("expected %d surviving cards, got %d", surviving, sum)
	}
}
