package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/repository/memory"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
)

func storeMsg(t *testing.T, repo *memory.Memory, msg *model.Message) {
	t.Helper()
	_, err := repo.Message().Store(context.Background(), msg, nil)
	gt.NoError(t, err).Required()
}

func TestBuildReport(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock, usecase.WithChannelPause(0))
	ctx := context.Background()
	now := time.Now()

	seedChannel(t, repo, "C1", "general", types.ChannelTypePublic)
	seedChannel(t, repo, "D1", "", types.ChannelTypeDM)
	gt.NoError(t, repo.User().Upsert(ctx, &model.User{ID: "U2", Name: "alice", DisplayName: "Alice"})).Required()

	// mention of U1, inside the window
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "500.000001", UserID: "U2",
		Text: "<@U1> please review", CreatedAt: now.Add(-1 * time.Hour),
	})
	// mention outside the window
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "100.000001", UserID: "U2",
		Text: "<@U1> old ping", CreatedAt: now.Add(-48 * time.Hour),
	})
	// DM from someone else and a DM from U1 themselves
	storeMsg(t, repo, &model.Message{
		ChannelID: "D1", TS: "500.000002", UserID: "U2",
		Text: "hi there", CreatedAt: now.Add(-2 * time.Hour),
	})
	storeMsg(t, repo, &model.Message{
		ChannelID: "D1", TS: "500.000003", UserID: "U1",
		Text: "my own reply", CreatedAt: now.Add(-1 * time.Hour),
	})
	// thread U1 participates in, with two replies by others
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "400.000000", UserID: "U1",
		Text: "thread root", CreatedAt: now.Add(-5 * time.Hour),
	})
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "400.000100", UserID: "U2", ThreadTS: "400.000000",
		Text: "first reply", CreatedAt: now.Add(-4 * time.Hour),
	})
	storeMsg(t, repo, &model.Message{
		ChannelID: "C1", TS: "400.000200", UserID: "U3", ThreadTS: "400.000000",
		Text: "second reply", CreatedAt: now.Add(-3 * time.Hour),
	})

	report, err := uc.Status.BuildReport(ctx, 24*time.Hour)
	gt.NoError(t, err).Required()
	gt.Array(t, report.Items).Length(3).Required()

	// priority ascending across the whole list
	for i := 1; i < len(report.Items); i++ {
		gt.Bool(t, report.Items[i-1].Priority <= report.Items[i].Priority).True()
	}

	critical := report.Items[0]
	gt.Value(t, critical.Priority).Equal(types.PriorityCritical)
	gt.Value(t, critical.TS).Equal(types.MessageTS("500.000001"))
	gt.Value(t, critical.ChannelName).Equal("general")
	gt.Value(t, critical.UserName).Equal("Alice")
	gt.Bool(t, strings.HasPrefix(critical.Link, "https://test.slack.com/archives/C1/p")).True()

	high := report.Items[1]
	gt.Value(t, high.Priority).Equal(types.PriorityHigh)
	gt.Value(t, high.TS).Equal(types.MessageTS("500.000002"))

	// thread tier deduplicates to the newest reply per thread
	medium := report.Items[2]
	gt.Value(t, medium.Priority).Equal(types.PriorityMedium)
	gt.Value(t, medium.TS).Equal(types.MessageTS("400.000200"))
}

func TestBuildReport_MentionWinsOverDM(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock, usecase.WithChannelPause(0))
	ctx := context.Background()

	seedChannel(t, repo, "D1", "", types.ChannelTypeDM)
	storeMsg(t, repo, &model.Message{
		ChannelID: "D1", TS: "500.000010", UserID: "U2",
		Text: "<@U1> urgent", CreatedAt: time.Now().Add(-time.Hour),
	})

	report, err := uc.Status.BuildReport(ctx, 24*time.Hour)
	gt.NoError(t, err).Required()
	gt.Array(t, report.Items).Length(1).Required()
	gt.Value(t, report.Items[0].Priority).Equal(types.PriorityCritical)
}

func TestBuildReport_Reminders(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	uc := usecase.New(repo, mock, usecase.WithChannelPause(0))
	ctx := context.Background()
	now := time.Now()

	gt.NoError(t, repo.Reminder().Upsert(ctx, &model.Reminder{
		ID: "Rm2", UserID: "U1", Text: "later", DueAt: now.Add(2 * time.Hour),
	})).Required()
	gt.NoError(t, repo.Reminder().Upsert(ctx, &model.Reminder{
		ID: "Rm1", UserID: "U1", Text: "soon", DueAt: now.Add(1 * time.Hour),
	})).Required()
	gt.NoError(t, repo.Reminder().Upsert(ctx, &model.Reminder{
		ID: "Rm3", UserID: "U1", Text: "done", DueAt: now.Add(-1 * time.Hour),
		CompletedAt: now,
	})).Required()

	report, err := uc.Status.BuildReport(ctx, 24*time.Hour)
	gt.NoError(t, err).Required()
	gt.Array(t, report.Items).Length(0)
	gt.Array(t, report.Reminders).Length(2).Required()
	gt.Value(t, report.Reminders[0].Text).Equal("soon")
	gt.Value(t, report.Reminders[1].Text).Equal("later")
}
