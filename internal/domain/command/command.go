// Package command classifies raw user input into navigation and search commands.
package command

import "strings"

// Kind is the command class of a user input.
type Kind string

// Command kinds.
const (
	Empty              Kind = "empty"
	SearchArticles     Kind = "search_articles"
	ExploreArticles    Kind = "explore_articles"
	OpenArticle        Kind = "open_article"
	SearchRestaurants  Kind = "search_restaurants"
	ExploreRestaurants Kind = "explore_restaurants"
	OpenRestaurant     Kind = "open_restaurant"
)

// Command prefixes. Matching is case-sensitive.
const (
	PrefixExplore           = "explore:"
	PrefixOpen              = "open:"
	PrefixRestaurant        = "res:"
	PrefixRestaurantExplore = "res-explore:"
	PrefixRestaurantOpen    = "res-open:"
)

// prefixes is checked in order; the first match wins.
var prefixes = []struct {
	prefix string
	kind   Kind
}{
	{PrefixExplore, ExploreArticles},
	{PrefixOpen, OpenArticle},
	{PrefixRestaurant, SearchRestaurants},
	{PrefixRestaurantExplore, ExploreRestaurants},
	{PrefixRestaurantOpen, OpenRestaurant},
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// IsNavigation reports whether k references a previously produced result set.
func (k Kind) IsNavigation() bool {
	switch k {
	case ExploreArticles, OpenArticle, ExploreRestaurants, OpenRestaurant:
		return true
	}
	return false
}

// Classify returns the kind of the trimmed input. Any non-empty text without a
// known prefix is an article search.
func Classify(raw string) Kind {
	q := strings.TrimSpace(raw)
	if q == "" {
		return Empty
	}
	for _, p := range prefixes {
		if strings.HasPrefix(q, p.prefix) {
			return p.kind
		}
	}
	return SearchArticles
}

// IsQuestion reports whether the trimmed input ends with a question mark.
func IsQuestion(raw string) bool {
	return strings.HasSuffix(strings.TrimSpace(raw), "?")
}

// Argument returns the reference carried by a navigation command: everything
// after the first colon, each colon-separated part trimmed and re-joined with a space.
func Argument(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 {
		return ""
	}
	rest := parts[1:]
	for i := range rest {
		rest[i] = strings.TrimSpace(rest[i])
	}
	return strings.TrimSpace(strings.Join(rest, " "))
}

// Command is a classified user input.
type Command struct {
	Kind Kind
	// Raw is the trimmed input.
	Raw string
	// Arg is the search text for searches and the reference for navigation.
	Arg string
	// Question is set for article searches that should be answered first.
	Question bool
}

// Parse classifies raw and extracts its argument.
func Parse(raw string) Command {
	q := strings.TrimSpace(raw)
	cmd := Command{Kind: Classify(q), Raw: q}

	switch cmd.Kind {
	case SearchArticles:
		cmd.Arg = q
		cmd.Question = IsQuestion(q)
	case SearchRestaurants:
		cmd.Arg = strings.TrimSpace(strings.TrimPrefix(q, PrefixRestaurant))
	case Empty:
	default:
		cmd.Arg = Argument(q)
	}
	return cmd
}
