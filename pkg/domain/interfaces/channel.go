package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// ChannelRepository provides storage operations for channels
type ChannelRepository interface {
	// Upsert inserts the channel or updates it in place by ID
	Upsert(ctx context.Context, channel *model.Channel) error

	// Get retrieves a channel by ID, (nil, nil) when absent
	Get(ctx context.Context, id types.ChannelID) (*model.Channel, error)

	// ListActive retrieves all non-archived channels
	ListActive(ctx context.Context) ([]*model.Channel, error)
}
