package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// SyncStateRepository provides storage operations for per-channel cursors
type SyncStateRepository interface {
	// Get retrieves the cursor for a channel, (nil, nil) when the
	// channel has never been synced
	Get(ctx context.Context, channelID types.ChannelID) (*model.SyncState, error)

	// Upsert writes the cursor. Callers are responsible for only ever
	// advancing LastTS; the cursor must never move backwards.
	Upsert(ctx context.Context, state *model.SyncState) error
}
