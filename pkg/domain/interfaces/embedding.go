package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
)

// EmbeddingRepository provides storage operations for message embeddings
type EmbeddingRepository interface {
	// Upsert stores the embedding vector for a message
	Upsert(ctx context.Context, messageID int64, vector []float32, embeddingModel string) error

	// SearchSimilar returns messages ranked by similarity to the query
	// vector, highest similarity first
	SearchSimilar(ctx context.Context, vector []float32, limit int) ([]*model.ScoredMessage, error)

	// ListMissing returns messages with non-empty text that have no
	// embedding yet, newest first
	ListMissing(ctx context.Context, limit int) ([]*model.Message, error)

	// Stats reports embedding coverage over the message corpus
	Stats(ctx context.Context) (*model.EmbeddingStats, error)
}
