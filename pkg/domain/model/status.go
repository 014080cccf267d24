package model

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// StatusItem is one entry in the attention report
type StatusItem struct {
	Priority    types.Priority
	ChannelID   types.ChannelID
	ChannelName string
	TS          types.MessageTS
	ThreadTS    types.MessageTS
	UserID      types.UserID
	UserName    string
	TextPreview string
	Timestamp   time.Time
	Link        string
	Reason      string
}

// Report is a complete attention report. Items are sorted by priority
// ascending, then timestamp descending within a tier. Reminders are kept
// separate from the ranked list and sorted by due time.
type Report struct {
	Items       []*StatusItem
	Reminders   []*Reminder
	GeneratedAt time.Time
}

// ByPriority groups the report items per priority tier
func (r *Report) ByPriority() map[types.Priority][]*StatusItem {
	out := make(map[types.Priority][]*StatusItem, len(types.AllPriorities()))
	for _, p := range types.AllPriorities() {
		out[p] = nil
	}
	for _, item := range r.Items {
		out[item.Priority] = append(out[item.Priority], item)
	}
	return out
}
