package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// ErrEmbeddingUnavailable is returned by an Embedder that has no backing
// model configured. Callers treat it as "vector features disabled", not
// as a failure.
var ErrEmbeddingUnavailable = goerr.New("embedding generation is not available")

// Embedder generates embedding vectors for message text
type Embedder interface {
	// Embed returns the embedding vector for the text, or
	// ErrEmbeddingUnavailable when no model is configured
	Embed(ctx context.Context, text string) ([]float32, error)

	// Model returns the identifier of the embedding model
	Model() string
}
