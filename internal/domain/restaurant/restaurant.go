// Package restaurant holds the payload of a restaurant search result.
package restaurant

// Uncategorized groups restaurants that report no categories.
const Uncategorized = "Uncategorized"

// PreviewLen is how many characters of the matching review a summary shows.
const PreviewLen = 150

// Restaurant is the payload of a restaurant card.
type Restaurant struct {
	Name       string
	URL        string
	Rating     float64
	Price      string
	City       string
	NumReviews int
	Categories []string
	// Review is the review passage that matched the query.
	Review string
	// Meta is passed through from the backend untouched.
	Meta map[string]any
}

// Category implements card.Payload. The first reported category is the grouping key.
func (r Restaurant) Category() string {
	if len(r.Categories) == 0 || r.Categories[0] == "" {
		return Uncategorized
	}
	return r.Categories[0]
}

// Preview returns the first PreviewLen characters of the review.
func (r Restaurant) Preview() string {
	runes := []rune(r.Review)
	if len(runes) <= PreviewLen {
		return r.Review
	}
	return string(runes[:PreviewLen])
}
