package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
)

// EmbeddingUseCase backfills embedding vectors for synced messages
type EmbeddingUseCase struct {
	repo     interfaces.Repository
	embedder interfaces.Embedder
}

func newEmbeddingUseCase(uc *UseCases) *EmbeddingUseCase {
	return &EmbeddingUseCase{
		repo:     uc.repo,
		embedder: uc.embedder,
	}
}

// Backfill embeds up to batch messages that have text but no vector
// yet, returning how many were embedded. ErrEmbeddingUnavailable is
// passed through so callers can report the feature as disabled.
func (u *EmbeddingUseCase) Backfill(ctx context.Context, batch int) (int, error) {
	if u.embedder == nil {
		return 0, goerr.Wrap(interfaces.ErrEmbeddingUnavailable, "no embedder configured")
	}

	missing, err := u.repo.Embedding().ListMissing(ctx, batch)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list messages without embeddings")
	}

	done := 0
	for _, msg := range missing {
		vector, err := u.embedder.Embed(ctx, msg.Text)
		if err != nil {
			return done, goerr.Wrap(err, "failed to embed message", goerr.V("message_id", msg.ID))
		}
		if err := u.repo.Embedding().Upsert(ctx, msg.ID, vector, u.embedder.Model()); err != nil {
			return done, goerr.Wrap(err, "failed to store embedding", goerr.V("message_id", msg.ID))
		}
		done++
	}
	return done, nil
}

// Stats reports embedding coverage over the message corpus
func (u *EmbeddingUseCase) Stats(ctx context.Context) (*model.EmbeddingStats, error) {
	return u.repo.Embedding().Stats(ctx)
}
