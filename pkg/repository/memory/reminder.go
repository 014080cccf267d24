package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type reminderRepository struct {
	mu        sync.RWMutex
	reminders map[string]*model.Reminder
}

func newReminderRepository() *reminderRepository {
	return &reminderRepository{
		reminders: make(map[string]*model.Reminder),
	}
}

func (r *reminderRepository) Upsert(ctx context.Context, reminder *model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminderCopy := *reminder
	reminderCopy.UpdatedAt = time.Now()
	r.reminders[reminder.ID] = &reminderCopy
	return nil
}

func (r *reminderRepository) ListPending(ctx context.Context, userID types.UserID) ([]*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Reminder
	for _, reminder := range r.reminders {
		if reminder.UserID != userID || !reminder.Pending() {
			continue
		}
		reminderCopy := *reminder
		out = append(out, &reminderCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueAt.Before(out[j].DueAt)
	})
	return out, nil
}
