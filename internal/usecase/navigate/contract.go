package navigate

import "github.com/kailas-cloud/cardex/internal/domain/card"

// Linker materializes related concepts for an opened article.
type Linker interface {
	card.Linker
}
