package interfaces

import (
	"context"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// MessageRepository provides storage operations for messages.
//
// Store is the only write path. It upserts the message by its
// (channel_id, ts) natural key and replaces the message's reaction rows
// with the given snapshot in a single transaction, so a crash can never
// leave a message paired with a stale reaction set.
type MessageRepository interface {
	// Store upserts the message and replaces its reaction snapshot
	// atomically, returning the storage-assigned message ID
	Store(ctx context.Context, msg *model.Message, reactions model.ReactionSnapshot) (int64, error)

	// Get retrieves a message by its natural key, (nil, nil) when absent
	Get(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (*model.Message, error)

	// GetByID retrieves a message by storage ID, (nil, nil) when absent
	GetByID(ctx context.Context, id int64) (*model.Message, error)

	// ListMentions returns messages whose text mentions the user,
	// newest first, created within the window starting at since
	ListMentions(ctx context.Context, userID types.UserID, since time.Time, limit int) ([]*model.Message, error)

	// ListDirect returns messages in im/mpim channels, newest first,
	// created within the window starting at since
	ListDirect(ctx context.Context, since time.Time, limit int) ([]*model.Message, error)

	// ListThreadActivity returns messages by other authors in threads
	// the user has posted in, newest first, within the window
	ListThreadActivity(ctx context.Context, userID types.UserID, since time.Time, limit int) ([]*model.Message, error)

	// SearchText returns messages whose text contains the query
	// (case-insensitive substring), newest first
	SearchText(ctx context.Context, query string, limit int) ([]*model.Message, error)
}
