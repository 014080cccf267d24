package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/repository/memory"
	"github.com/cybergrind/slack-assistant/pkg/service/embedding"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
)

func TestSearch_TextScore(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedding.NewStub()))
	ctx := context.Background()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "600.000000", UserID: "U2",
		Text: "we will deploy tonight.", CreatedAt: time.Now().Add(-time.Hour),
	})

	results, err := uc.Search.Search(ctx, "deploy", 10,
		[]types.SearchSource{types.SearchSourceText})
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(1).Required()

	// "deploy" starts at byte 8 of a 23 byte text
	gt.Value(t, results[0].Score).Equal(1.0 - 8.0/23.0)
	gt.Value(t, results[0].Source).Equal(types.SearchSourceText)
	gt.Value(t, results[0].ChannelName).Equal("general")
}

func TestSearch_DedupAcrossSources(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedding.NewStub()))
	ctx := context.Background()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "600.000000", UserID: "U2",
		Text: "deploy window opens at nine", CreatedAt: time.Now().Add(-time.Hour),
	})

	// the remote search returns the same message with a lower score
	mock.searchResults = []*model.SearchResult{
		{
			Message:     &model.Message{ChannelID: "C1", TS: "600.000000", Text: "deploy window opens at nine"},
			ChannelName: "general",
			Score:       0.6,
			Source:      types.SearchSourceSlack,
		},
		{
			Message:     &model.Message{ChannelID: "C2", TS: "601.000000", Text: "deploy failed"},
			ChannelName: "alerts",
			Score:       0.55,
			Source:      types.SearchSourceSlack,
		},
	}

	results, err := uc.Search.Search(ctx, "deploy", 10, usecase.AllSearchSources())
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(2).Required()

	// highest scoring occurrence won and no key appears twice
	gt.Value(t, results[0].Message.TS).Equal(types.MessageTS("600.000000"))
	gt.Value(t, results[0].Source).Equal(types.SearchSourceText)
	gt.Value(t, results[1].Message.TS).Equal(types.MessageTS("601.000000"))
}

func TestSearch_VectorSource(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	embedder := &mockEmbedder{vector: []float32{1, 0, 0}}
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedder))
	ctx := context.Background()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "600.000000", UserID: "U2",
		Text: "quarterly planning notes", CreatedAt: time.Now().Add(-time.Hour),
	})
	stored, err := repo.Message().Get(ctx, "C1", "600.000000")
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.Embedding().Upsert(ctx, stored.ID, []float32{1, 0, 0}, "mock-embedding")).Required()

	results, err := uc.Search.Search(ctx, "planning", 10,
		[]types.SearchSource{types.SearchSourceVector})
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(1).Required()
	gt.Value(t, results[0].Source).Equal(types.SearchSourceVector)
	gt.Bool(t, results[0].Score > 0.99).True()
}

func TestSearch_StubEmbedderDegradesSilently(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedding.NewStub()))
	ctx := context.Background()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "600.000000", UserID: "U2",
		Text: "release checklist", CreatedAt: time.Now().Add(-time.Hour),
	})

	results, err := uc.Search.Search(ctx, "release", 10, []types.SearchSource{
		types.SearchSourceVector,
		types.SearchSourceText,
	})
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(1)
	gt.Value(t, results[0].Source).Equal(types.SearchSourceText)
}

func TestFindContext(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock,
		usecase.WithChannelPause(0), usecase.WithEmbedder(embedding.NewStub()))
	ctx := context.Background()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "700.000100", UserID: "U2",
		Text: "release checklist draft", CreatedAt: time.Now().Add(-time.Hour),
	})
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "700.000200", UserID: "U3",
		Text: "updated the release checklist", CreatedAt: time.Now().Add(-30 * time.Minute),
	})

	link := slacksvc.BuildMessageLink(testTeamURL, "C1", "700.000100", "")
	results, err := uc.Search.FindContext(ctx, link, 10)
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(1).Required()

	// the linked message itself matches its own text best
	gt.Value(t, results[0].Message.TS).Equal(types.MessageTS("700.000100"))

	// a link to a message that was never synced fails softly
	missing := slacksvc.BuildMessageLink(testTeamURL, "C1", "999.000000", "")
	results, err = uc.Search.FindContext(ctx, missing, 10)
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(0)
}
