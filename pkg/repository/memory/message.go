package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type naturalKey struct {
	channelID types.ChannelID
	ts        types.MessageTS
}

type messageRepository struct {
	mu        sync.RWMutex
	channels  *channelRepository
	byKey     map[naturalKey]int64
	byID      map[int64]*model.Message
	reactRows map[int64][]*model.Reaction
	nextMsgID int64
	nextRctID int64
}

func newMessageRepository(channels *channelRepository) *messageRepository {
	return &messageRepository{
		channels:  channels,
		byKey:     make(map[naturalKey]int64),
		byID:      make(map[int64]*model.Message),
		reactRows: make(map[int64][]*model.Reaction),
		nextMsgID: 1,
		nextRctID: 1,
	}
}

// Store upserts the message by (channel_id, ts) and replaces its
// reaction rows under one lock, mirroring the transactional guarantee of
// the database backend
func (r *messageRepository) Store(ctx context.Context, msg *model.Message, reactions model.ReactionSnapshot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := naturalKey{channelID: msg.ChannelID, ts: msg.TS}

	id, exists := r.byKey[key]
	if !exists {
		id = r.nextMsgID
		r.nextMsgID++
		r.byKey[key] = id
	}

	msgCopy := *msg
	msgCopy.ID = id
	msgCopy.UpdatedAt = now
	if exists {
		msgCopy.CreatedAt = r.byID[id].CreatedAt
	} else if msgCopy.CreatedAt.IsZero() {
		msgCopy.CreatedAt = now
	}
	r.byID[id] = &msgCopy

	rows := reactions.Rows(id)
	stored := make([]*model.Reaction, 0, len(rows))
	for _, row := range rows {
		rowCopy := *row
		rowCopy.ID = r.nextRctID
		rowCopy.CreatedAt = now
		r.nextRctID++
		stored = append(stored, &rowCopy)
	}
	r.reactRows[id] = stored

	return id, nil
}

func (r *messageRepository) Get(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[naturalKey{channelID: channelID, ts: ts}]
	if !ok {
		return nil, nil
	}
	msgCopy := *r.byID[id]
	return &msgCopy, nil
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	msgCopy := *msg
	return &msgCopy, nil
}

func (r *messageRepository) ListMentions(ctx context.Context, userID types.UserID, since time.Time, limit int) ([]*model.Message, error) {
	mention := "<@" + userID.String() + ">"
	return r.collect(limit, func(m *model.Message) bool {
		return strings.Contains(m.Text, mention) && m.CreatedAt.After(since)
	}), nil
}

func (r *messageRepository) ListDirect(ctx context.Context, since time.Time, limit int) ([]*model.Message, error) {
	return r.collect(limit, func(m *model.Message) bool {
		return r.channels.isDirect(m.ChannelID) && m.CreatedAt.After(since)
	}), nil
}

func (r *messageRepository) ListThreadActivity(ctx context.Context, userID types.UserID, since time.Time, limit int) ([]*model.Message, error) {
	// threads the user has posted in, keyed by (channel, thread root ts)
	r.mu.RLock()
	participated := make(map[naturalKey]bool)
	for _, m := range r.byID {
		if m.UserID != userID {
			continue
		}
		root := m.ThreadTS
		if root == "" {
			root = m.TS
		}
		participated[naturalKey{channelID: m.ChannelID, ts: root}] = true
	}
	r.mu.RUnlock()

	return r.collect(limit, func(m *model.Message) bool {
		if m.UserID == userID || !m.CreatedAt.After(since) {
			return false
		}
		return participated[naturalKey{channelID: m.ChannelID, ts: m.TS}] ||
			(m.ThreadTS != "" && participated[naturalKey{channelID: m.ChannelID, ts: m.ThreadTS}])
	}), nil
}

func (r *messageRepository) SearchText(ctx context.Context, query string, limit int) ([]*model.Message, error) {
	needle := strings.ToLower(query)
	return r.collect(limit, func(m *model.Message) bool {
		return strings.Contains(strings.ToLower(m.Text), needle)
	}), nil
}

// collect returns copies of matching messages, newest first
func (r *messageRepository) collect(limit int, match func(*model.Message) bool) []*model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Message
	for _, m := range r.byID {
		if match(m) {
			msgCopy := *m
			out = append(out, &msgCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].TS.After(out[j].TS)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *messageRepository) reactions() *reactionRepository {
	return &reactionRepository{messages: r}
}

type reactionRepository struct {
	messages *messageRepository
}

func (r *reactionRepository) ListByMessage(ctx context.Context, messageID int64) ([]*model.Reaction, error) {
	r.messages.mu.RLock()
	defer r.messages.mu.RUnlock()

	rows := r.messages.reactRows[messageID]
	out := make([]*model.Reaction, 0, len(rows))
	for _, row := range rows {
		rowCopy := *row
		out = append(out, &rowCopy)
	}
	return out, nil
}
