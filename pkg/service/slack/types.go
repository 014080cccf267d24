package slack

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// Service provides the Slack Web API operations the sync engine and the
// derived views consume. All list operations page internally; an opaque
// continuation token never leaks to callers.
type Service interface {
	// Authenticate verifies the token and caches the authenticated
	// identity. Must be called before any other operation.
	Authenticate(ctx context.Context) (*Identity, error)

	// Identity returns the cached identity, nil before Authenticate
	Identity() *Identity

	// ListConversations retrieves every non-archived conversation the
	// identity is a member of, across all supported kinds
	ListConversations(ctx context.Context) ([]*model.Channel, error)

	// GetHistory fetches messages newer than oldest, newest first,
	// paging until exhaustion or until limit messages are collected
	GetHistory(ctx context.Context, channelID types.ChannelID, oldest types.MessageTS, limit int) ([]*HistoryMessage, error)

	// GetThreadReplies fetches the replies of a thread, excluding the
	// parent message itself
	GetThreadReplies(ctx context.Context, channelID types.ChannelID, threadTS types.MessageTS) ([]*HistoryMessage, error)

	// GetUser retrieves a user profile
	GetUser(ctx context.Context, userID types.UserID) (*model.User, error)

	// ListReminders retrieves all reminders of the authenticated user
	ListReminders(ctx context.Context) ([]*model.Reminder, error)

	// SearchMessages delegates to Slack's own search endpoint
	SearchMessages(ctx context.Context, query string, count int) ([]*model.SearchResult, error)

	// MessageLink builds a permalink for a message
	MessageLink(channelID types.ChannelID, ts, threadTS types.MessageTS) string
}

// Identity is the authenticated Slack user
type Identity struct {
	UserID   types.UserID
	UserName string
	TeamID   string
	TeamURL  string
}

// HistoryMessage is a normalized message together with the full reaction
// snapshot the API returned for it
type HistoryMessage struct {
	Message   *model.Message
	Reactions model.ReactionSnapshot
}
