package memory

import (
	"context"
	"sync"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type syncStateRepository struct {
	mu     sync.RWMutex
	states map[types.ChannelID]*model.SyncState
}

func newSyncStateRepository() *syncStateRepository {
	return &syncStateRepository{
		states: make(map[types.ChannelID]*model.SyncState),
	}
}

func (r *syncStateRepository) Get(ctx context.Context, channelID types.ChannelID) (*model.SyncState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[channelID]
	if !ok {
		return nil, nil
	}
	stateCopy := *state
	return &stateCopy, nil
}

func (r *syncStateRepository) Upsert(ctx context.Context, state *model.SyncState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stateCopy := *state
	r.states[state.ChannelID] = &stateCopy
	return nil
}
