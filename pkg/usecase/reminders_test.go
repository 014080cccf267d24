package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/repository/memory"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
)

func TestReminderRefresh(t *testing.T) {
	repo := memory.New()
	mock := newMockSlack("U1")
	now := time.Now()
	mock.reminders = []*model.Reminder{
		{ID: "Rm1", UserID: "U1", Text: "water the plants", DueAt: now.Add(3 * time.Hour)},
		{ID: "Rm2", UserID: "U1", Text: "standup notes", DueAt: now.Add(1 * time.Hour)},
		{ID: "Rm3", UserID: "U1", Text: "already done", DueAt: now.Add(-1 * time.Hour), CompletedAt: now},
	}
	uc := usecase.New(repo, mock, usecase.WithChannelPause(0))
	ctx := context.Background()

	pending, err := uc.Reminder.Refresh(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, pending).Length(2).Required()
	gt.Value(t, pending[0].Text).Equal("standup notes")
	gt.Value(t, pending[1].Text).Equal("water the plants")

	// a second refresh updates in place, no duplicates
	pending, err = uc.Reminder.Refresh(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, pending).Length(2)
}
