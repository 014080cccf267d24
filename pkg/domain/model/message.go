package model

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// Message is a synced Slack message. (ChannelID, TS) is its natural key;
// the numeric ID is assigned by storage.
type Message struct {
	ID         int64
	ChannelID  types.ChannelID
	TS         types.MessageTS
	UserID     types.UserID // empty for authorless messages (e.g. some bot events)
	Text       string
	ThreadTS   types.MessageTS // empty when the message is not part of a thread
	ReplyCount int
	Edited     bool
	Type       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Extra      Extra
}

// IsThreadParent reports whether the message has replies
func (m *Message) IsThreadParent() bool {
	return m.ReplyCount > 0
}

// IsThreadReply reports whether the message is a reply inside a thread
func (m *Message) IsThreadReply() bool {
	return m.ThreadTS != "" && m.ThreadTS != m.TS
}
