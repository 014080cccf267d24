package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type channelRepository struct {
	mu       sync.RWMutex
	channels map[types.ChannelID]*model.Channel
}

func newChannelRepository() *channelRepository {
	return &channelRepository{
		channels: make(map[types.ChannelID]*model.Channel),
	}
}

func (r *channelRepository) Upsert(ctx context.Context, channel *model.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	channelCopy := *channel
	channelCopy.UpdatedAt = time.Now()
	if existing, ok := r.channels[channel.ID]; ok {
		channelCopy.CreatedAt = existing.CreatedAt
	}
	r.channels[channel.ID] = &channelCopy
	return nil
}

func (r *channelRepository) Get(ctx context.Context, id types.ChannelID) (*model.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channel, ok := r.channels[id]
	if !ok {
		return nil, nil
	}
	channelCopy := *channel
	return &channelCopy, nil
}

func (r *channelRepository) ListActive(ctx context.Context) ([]*model.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channels := make([]*model.Channel, 0, len(r.channels))
	for _, channel := range r.channels {
		if channel.Archived {
			continue
		}
		channelCopy := *channel
		channels = append(channels, &channelCopy)
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].ID < channels[j].ID
	})
	return channels, nil
}

// isDirect reports whether the channel is an im/mpim conversation.
// Used by the message repository for the DM query.
func (r *channelRepository) isDirect(id types.ChannelID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channel, ok := r.channels[id]
	return ok && channel.Type.IsDirect()
}
