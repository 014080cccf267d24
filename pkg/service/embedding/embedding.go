package embedding

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
)

// DefaultModel is the embedding model the schema records for vectors
const DefaultModel = "text-embedding-ada-002"

// Stub is an Embedder with no backing model. Vector-dependent features
// degrade gracefully while the real generator is not integrated:
// callers receive ErrEmbeddingUnavailable and skip the vector path.
type Stub struct {
	model string
}

var _ interfaces.Embedder = &Stub{}

// NewStub creates an Embedder that always reports unavailability
func NewStub() *Stub {
	return &Stub{model: DefaultModel}
}

// Embed always returns ErrEmbeddingUnavailable
func (s *Stub) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, interfaces.ErrEmbeddingUnavailable
}

// Model returns the configured model identifier
func (s *Stub) Model() string {
	return s.model
}
