package usecase_test

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
)

const testTeamURL = "https://test.slack.com/"

// mockSlack is a mock implementation of slack.Service for testing
type mockSlack struct {
	identity      *slacksvc.Identity
	channels      []*model.Channel
	history       map[types.ChannelID][]*slacksvc.HistoryMessage // newest first
	replies       map[string][]*slacksvc.HistoryMessage
	users         map[types.UserID]*model.User
	reminders     []*model.Reminder
	searchResults []*model.SearchResult

	historyErr   error
	getUserCalls map[types.UserID]int
}

func newMockSlack(selfID types.UserID) *mockSlack {
	return &mockSlack{
		identity: &slacksvc.Identity{
			UserID:   selfID,
			UserName: "self",
			TeamID:   "T001",
			TeamURL:  testTeamURL,
		},
		history:      map[types.ChannelID][]*slacksvc.HistoryMessage{},
		replies:      map[string][]*slacksvc.HistoryMessage{},
		users:        map[types.UserID]*model.User{},
		getUserCalls: map[types.UserID]int{},
	}
}

func (m *mockSlack) Authenticate(ctx context.Context) (*slacksvc.Identity, error) {
	return m.identity, nil
}

func (m *mockSlack) Identity() *slacksvc.Identity {
	return m.identity
}

func (m *mockSlack) ListConversations(ctx context.Context) ([]*model.Channel, error) {
	out := make([]*model.Channel, 0, len(m.channels))
	for _, ch := range m.channels {
		chCopy := *ch
		out = append(out, &chCopy)
	}
	return out, nil
}

func (m *mockSlack) GetHistory(ctx context.Context, channelID types.ChannelID, oldest types.MessageTS, limit int) ([]*slacksvc.HistoryMessage, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}

	var out []*slacksvc.HistoryMessage
	for _, hm := range m.history[channelID] {
		if oldest != "" && !hm.Message.TS.After(oldest) {
			continue
		}
		out = append(out, copyHistoryMessage(hm))
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *mockSlack) GetThreadReplies(ctx context.Context, channelID types.ChannelID, threadTS types.MessageTS) ([]*slacksvc.HistoryMessage, error) {
	key := channelID.String() + ":" + threadTS.String()
	var out []*slacksvc.HistoryMessage
	for _, hm := range m.replies[key] {
		out = append(out, copyHistoryMessage(hm))
	}
	return out, nil
}

func (m *mockSlack) GetUser(ctx context.Context, userID types.UserID) (*model.User, error) {
	m.getUserCalls[userID]++
	user, ok := m.users[userID]
	if !ok {
		return nil, goerr.New("user_not_found", goerr.V("user_id", userID))
	}
	userCopy := *user
	return &userCopy, nil
}

func (m *mockSlack) ListReminders(ctx context.Context) ([]*model.Reminder, error) {
	out := make([]*model.Reminder, 0, len(m.reminders))
	for _, r := range m.reminders {
		rCopy := *r
		out = append(out, &rCopy)
	}
	return out, nil
}

func (m *mockSlack) SearchMessages(ctx context.Context, query string, count int) ([]*model.SearchResult, error) {
	out := make([]*model.SearchResult, 0, len(m.searchResults))
	for _, res := range m.searchResults {
		resCopy := *res
		out = append(out, &resCopy)
	}
	return out, nil
}

func (m *mockSlack) MessageLink(channelID types.ChannelID, ts, threadTS types.MessageTS) string {
	return slacksvc.BuildMessageLink(testTeamURL, channelID, ts, threadTS)
}

func copyHistoryMessage(hm *slacksvc.HistoryMessage) *slacksvc.HistoryMessage {
	msgCopy := *hm.Message
	snapshot := make(model.ReactionSnapshot, len(hm.Reactions))
	copy(snapshot, hm.Reactions)
	return &slacksvc.HistoryMessage{Message: &msgCopy, Reactions: snapshot}
}

// mockNotifier records reaction change notifications
type mockNotifier struct {
	calls []notification
}

type notification struct {
	ts       types.MessageTS
	snapshot model.ReactionSnapshot
}

func (m *mockNotifier) NotifyReactionChange(ctx context.Context, msg *model.Message, snapshot model.ReactionSnapshot) error {
	m.calls = append(m.calls, notification{ts: msg.TS, snapshot: snapshot})
	return nil
}

// mockEmbedder returns a fixed vector for any text
type mockEmbedder struct {
	vector []float32
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return m.vector, nil
}

func (m *mockEmbedder) Model() string {
	return "mock-embedding"
}
