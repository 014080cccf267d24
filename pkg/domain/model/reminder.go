package model

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// Reminder is a locally cached Slack reminder. The remote API is the
// source of truth; the cache is refreshed on demand.
type Reminder struct {
	ID          string
	UserID      types.UserID
	Text        string
	DueAt       time.Time
	CompletedAt time.Time // zero when still pending
	Recurring   bool
	UpdatedAt   time.Time
	Extra       Extra
}

// Pending reports whether the reminder has not been completed yet
func (r *Reminder) Pending() bool {
	return r.CompletedAt.IsZero()
}
