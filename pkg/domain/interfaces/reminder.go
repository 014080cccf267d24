package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// ReminderRepository provides storage operations for the reminder cache
type ReminderRepository interface {
	// Upsert inserts the reminder or updates it in place by ID
	Upsert(ctx context.Context, reminder *model.Reminder) error

	// ListPending retrieves incomplete reminders for the user,
	// ordered by due time ascending
	ListPending(ctx context.Context, userID types.UserID) ([]*model.Reminder, error)
}
