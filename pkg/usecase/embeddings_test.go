package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/repository/memory"
	"github.com/cybergrind/slack-assistant/pkg/service/embedding"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
)

func TestEmbeddingBackfill(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	embedder := &mockEmbedder{vector: []float32{0.5, 0.5}}
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedder))
	ctx := context.Background()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "800.000001", UserID: "U2",
		Text: "first", CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "800.000002", UserID: "U2",
		Text: "second", CreatedAt: time.Now().Add(-time.Hour),
	})

	done, err := uc.Embedding.Backfill(ctx, 10)
	gt.NoError(t, err).Required()
	gt.Value(t, done).Equal(2)

	stats, err := uc.Embedding.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, stats.TotalMessages).Equal(int64(2))
	gt.Value(t, stats.EmbeddedMessages).Equal(int64(2))
	gt.Value(t, stats.Coverage()).Equal(100.0)

	// nothing left to embed
	done, err = uc.Embedding.Backfill(ctx, 10)
	gt.NoError(t, err).Required()
	gt.Value(t, done).Equal(0)
}

func TestEmbeddingBackfill_Unavailable(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedding.NewStub()))
	ctx := context.Background()

	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "800.000001", UserID: "U2",
		Text: "first", CreatedAt: time.Now().Add(-time.Hour),
	})

	_, err := uc.Embedding.Backfill(ctx, 10)
	gt.Value(t, err).NotNil().Required()
	gt.Bool(t, errors.Is(err, interfaces.ErrEmbeddingUnavailable)).True()
}
