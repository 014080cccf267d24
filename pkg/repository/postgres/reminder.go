package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type reminderRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ReminderRepository = &reminderRepository{}

func (r *reminderRepository) Upsert(ctx context.Context, reminder *model.Reminder) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reminders (id, user_id, text, due_at, completed_at, recurring, updated_at, extra)
		VALUES ($1, $2, $3, $4, $5, $6, now(), $7)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			text = EXCLUDED.text,
			due_at = EXCLUDED.due_at,
			completed_at = EXCLUDED.completed_at,
			recurring = EXCLUDED.recurring,
			updated_at = now(),
			extra = EXCLUDED.extra`,
		reminder.ID,
		reminder.UserID.String(),
		reminder.Text,
		nullableTime(reminder.DueAt),
		nullableTime(reminder.CompletedAt),
		reminder.Recurring,
		extraParam(reminder.Extra),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert reminder", goerr.V("reminder_id", reminder.ID))
	}
	return nil
}

func (r *reminderRepository) ListPending(ctx context.Context, userID types.UserID) ([]*model.Reminder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, text, due_at, completed_at, recurring, updated_at, extra
		FROM reminders
		WHERE user_id = $1 AND completed_at IS NULL
		ORDER BY due_at ASC NULLS LAST`,
		userID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminders", goerr.V("user_id", userID))
	}
	defer rows.Close()

	var reminders []*model.Reminder
	for rows.Next() {
		var reminder model.Reminder
		var uid string
		var dueAt, completedAt *time.Time
		var extra map[string]any
		if err := rows.Scan(&reminder.ID, &uid, &reminder.Text, &dueAt, &completedAt,
			&reminder.Recurring, &reminder.UpdatedAt, &extra); err != nil {
			return nil, goerr.Wrap(err, "failed to scan reminder")
		}
		reminder.UserID = types.UserID(uid)
		reminder.DueAt = timeOrZero(dueAt)
		reminder.CompletedAt = timeOrZero(completedAt)
		reminder.Extra = model.Extra(extra)
		reminders = append(reminders, &reminder)
	}
	return reminders, rows.Err()
}
