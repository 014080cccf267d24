package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
)

// ReminderUseCase refreshes the local reminder cache from the API.
// Slack is the source of truth; the cache only serves the status report.
type ReminderUseCase struct {
	repo  interfaces.Repository
	slack slacksvc.Service
}

func newReminderUseCase(uc *UseCases) *ReminderUseCase {
	return &ReminderUseCase{
		repo:  uc.repo,
		slack: uc.slack,
	}
}

// Refresh pulls all reminders of the authenticated user, upserts them
// and returns the pending ones ordered by due time
func (u *ReminderUseCase) Refresh(ctx context.Context) ([]*model.Reminder, error) {
	identity := u.slack.Identity()
	if identity == nil {
		return nil, goerr.New("not authenticated")
	}

	reminders, err := u.slack.ListReminders(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch reminders")
	}

	for _, r := range reminders {
		if err := u.repo.Reminder().Upsert(ctx, r); err != nil {
			return nil, goerr.Wrap(err, "failed to store reminder", goerr.V("reminder_id", r.ID))
		}
	}

	pending, err := u.repo.Reminder().ListPending(ctx, identity.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pending reminders")
	}
	return pending, nil
}
