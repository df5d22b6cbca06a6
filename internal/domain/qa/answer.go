// Package qa holds answers produced by the question answering backend.
package qa

// Source is the article an answer was extracted from.
type Source struct {
	Title   string
	URL     string
	Summary string
}

// Answer is a single extracted answer. Backend order is preserved; the first is primary.
type Answer struct {
	Text   string
	Score  float64
	Source Source
}
