package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/collection"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
)

const helpText = `Commands:
  <text>                search articles (end with ? to ask a question)
  explore: <category>   list the articles of a category
  open: <index>         show an article of the explored category
  res: <text>           search restaurants
  res-explore: <cat>    list the restaurants of a category
  help | quit
`

func render(w io.Writer, out commanduc.Outcome) {
	for i, a := range out.Answers {
		if i == 0 {
			fmt.Fprintf(w, "Answer: %s (%.2f)\n", a.Text, a.Score)
			if a.Source.Title != "" {
				fmt.Fprintf(w, "  from %s %s\n", a.Source.Title, a.Source.URL)
			}
			continue
		}
		fmt.Fprintf(w, "  also: %s (%.2f)\n", a.Text, a.Score)
	}

	switch {
	case out.NoResults:
		fmt.Fprintln(w, "no results")
	case out.Articles != nil:
		fmt.Fprintf(w, "%d results\n", collection.Total(out.Articles))
		for _, s := range commanduc.SummarizeArticles(out.Articles) {
			fmt.Fprintf(w, "[%s] %d | %s %s\n", s.Key, s.Count, s.TopTitle, s.TopURL)
		}
	case out.Restaurants != nil:
		fmt.Fprintf(w, "%d results\n", collection.Total(out.Restaurants))
		for _, s := range commanduc.SummarizeRestaurants(out.Restaurants) {
			fmt.Fprintf(w, "[%s] %d | %s %s (%.2f)\n  %s\n", s.Key, s.Count, s.TopName, s.TopURL, s.TopScore, s.TopPreview)
		}
	case out.ArticleCollection != nil:
		fmt.Fprintf(w, "%s\n", out.ArticleCollection.Key())
		renderEntries(w, commanduc.ArticleEntries(out.ArticleCollection))
	case out.RestaurantCollection != nil:
		fmt.Fprintf(w, "%s\n", out.RestaurantCollection.Key())
		renderEntries(w, commanduc.RestaurantEntries(out.RestaurantCollection))
	case out.Opened != nil:
		renderOpened(w, out)
	}
}

func renderEntries(w io.Writer, entries []commanduc.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%3d. %s %s (%.2f)\n", e.Index, e.Title, e.URL, e.Score)
		if e.Preview != "" {
			fmt.Fprintf(w, "     %s\n", e.Preview)
		}
	}
}

func renderOpened(w io.Writer, out commanduc.Outcome) {
	a := out.Opened.Payload()
	fmt.Fprintf(w, "%s / %s\n%s\n", out.Opened.CollectionKey(), a.Title, a.URL)
	if a.Date != "" {
		fmt.Fprintf(w, "%s, %d votes, %d responses\n", a.Date, a.NumVotes, a.NumResponses)
	}
	if a.SummaryPrefix != "" {
		fmt.Fprintln(w, a.SummaryPrefix)
	}
	fmt.Fprintln(w, a.Summary)
	if len(a.Topics) > 0 {
		fmt.Fprintf(w, "topics: %s\n", strings.Join(a.Topics, ", "))
	}
	if len(out.Concepts) == 0 {
		fmt.Fprintln(w, "no related concepts")
		return
	}
	fmt.Fprintln(w, "related:")
	for _, c := range out.Concepts {
		fmt.Fprintf(w, "  %s (%s) %s\n", c.Title, c.Label, c.URL)
	}
}

func renderError(w io.Writer, err error) {
	switch {
	case errors.Is(err, domain.ErrNoSessionState):
		fmt.Fprintln(w, "search first")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(w, "not found")
	case errors.Is(err, domain.ErrInvalidQuery):
		fmt.Fprintln(w, "invalid query")
	case errors.Is(err, domain.ErrUnsupported):
		fmt.Fprintln(w, "not supported")
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
