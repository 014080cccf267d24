package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

const (
	// DefaultPageSize is the per-request page size for list operations
	DefaultPageSize = 100
	// DefaultTeamURL is the permalink base used before authentication
	DefaultTeamURL = "https://slack.com/"
)

// client implements Service interface
type client struct {
	api      *slack.Client
	pageSize int
	identity *Identity
}

// Option is a functional option for client configuration
type Option func(*client)

// WithPageSize sets the per-request page size for list operations
func WithPageSize(size int) Option {
	return func(c *client) {
		c.pageSize = size
	}
}

// New creates a new Slack service with the provided user token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack user token is required")
	}

	c := &client{
		api:      slack.New(token),
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Authenticate verifies the token and caches the authenticated identity
func (c *client) Authenticate(ctx context.Context) (*Identity, error) {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "auth.test failed")
	}

	c.identity = &Identity{
		UserID:   types.UserID(resp.UserID),
		UserName: resp.User,
		TeamID:   resp.TeamID,
		TeamURL:  resp.URL,
	}

	return c.identity, nil
}

// Identity returns the cached identity, nil before Authenticate
func (c *client) Identity() *Identity {
	return c.identity
}

// ListConversations retrieves every non-archived conversation the
// identity is a member of, paging until the API signals no more pages
func (c *client) ListConversations(ctx context.Context) ([]*model.Channel, error) {
	kinds := make([]string, 0, len(types.AllChannelTypes()))
	for _, t := range types.AllChannelTypes() {
		kinds = append(kinds, t.String())
	}

	var channels []*model.Channel
	var cursor string

	for {
		params := &slack.GetConversationsParameters{
			Types:           kinds,
			ExcludeArchived: true,
			Limit:           c.pageSize,
			Cursor:          cursor,
		}

		convs, nextCursor, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list conversations")
		}

		for _, conv := range convs {
			// DMs do not carry an is_member flag
			if !conv.IsIM && !conv.IsMpIM && !conv.IsMember {
				continue
			}
			channels = append(channels, channelFromAPI(conv))
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	return channels, nil
}

// GetHistory fetches messages newer than oldest, newest first, paging
// until exhaustion or until limit messages are collected
func (c *client) GetHistory(ctx context.Context, channelID types.ChannelID, oldest types.MessageTS, limit int) ([]*HistoryMessage, error) {
	var raw []slack.Message
	var cursor string

	for {
		pageLimit := c.pageSize
		if remaining := limit - len(raw); remaining < pageLimit {
			pageLimit = remaining
		}

		params := &slack.GetConversationHistoryParameters{
			ChannelID: channelID.String(),
			Oldest:    oldest.String(),
			Limit:     pageLimit,
			Cursor:    cursor,
		}

		resp, err := c.api.GetConversationHistoryContext(ctx, params)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch history", goerr.V("channel_id", channelID))
		}

		raw = append(raw, resp.Messages...)

		if len(raw) >= limit {
			break
		}
		cursor = resp.ResponseMetaData.NextCursor
		if cursor == "" {
			break
		}
	}

	out := make([]*HistoryMessage, 0, len(raw))
	for _, m := range raw {
		out = append(out, historyFromAPI(channelID, m))
	}
	return out, nil
}

// GetThreadReplies fetches the replies of a thread. The API returns the
// parent as the first entry of the first page; it is excluded here.
func (c *client) GetThreadReplies(ctx context.Context, channelID types.ChannelID, threadTS types.MessageTS) ([]*HistoryMessage, error) {
	var out []*HistoryMessage
	var cursor string

	for {
		params := &slack.GetConversationRepliesParameters{
			ChannelID: channelID.String(),
			Timestamp: threadTS.String(),
			Limit:     c.pageSize,
			Cursor:    cursor,
		}

		msgs, _, nextCursor, err := c.api.GetConversationRepliesContext(ctx, params)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch thread replies",
				goerr.V("channel_id", channelID), goerr.V("thread_ts", threadTS))
		}

		for _, m := range msgs {
			if types.MessageTS(m.Timestamp) == threadTS {
				continue
			}
			out = append(out, historyFromAPI(channelID, m))
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	return out, nil
}

// GetUser retrieves a user profile
func (c *client) GetUser(ctx context.Context, userID types.UserID) (*model.User, error) {
	user, err := c.api.GetUserInfoContext(ctx, userID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user info", goerr.V("user_id", userID))
	}
	return userFromAPI(user), nil
}

// ListReminders retrieves all reminders of the authenticated user
func (c *client) ListReminders(ctx context.Context) ([]*model.Reminder, error) {
	reminders, err := c.api.ListReminders()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminders")
	}

	out := make([]*model.Reminder, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, reminderFromAPI(r, c.identityUserID()))
	}
	return out, nil
}

// SearchMessages delegates to Slack's search endpoint. Results arrive
// relevance-ordered; the rank is mapped onto a (0.5, 1.0] score since
// the Web API no longer exposes a numeric relevance value.
func (c *client) SearchMessages(ctx context.Context, query string, count int) ([]*model.SearchResult, error) {
	params := slack.NewSearchParameters()
	params.Sort = "score"
	params.SortDirection = "desc"
	params.Count = count

	matches, err := c.api.SearchMessagesContext(ctx, query, params)
	if err != nil {
		return nil, goerr.Wrap(err, "search.messages failed", goerr.V("query", query))
	}

	out := make([]*model.SearchResult, 0, len(matches.Matches))
	for i, match := range matches.Matches {
		channelID := types.ChannelID(match.Channel.ID)
		ts := types.MessageTS(match.Timestamp)

		msg := &model.Message{
			ChannelID: channelID,
			TS:        ts,
			UserID:    types.UserID(match.User),
			Text:      match.Text,
			Type:      match.Type,
			CreatedAt: ts.Time(),
		}

		link := match.Permalink
		if link == "" {
			link = c.MessageLink(channelID, ts, "")
		}

		out = append(out, &model.SearchResult{
			Message:     msg,
			ChannelName: match.Channel.Name,
			UserName:    match.Username,
			Score:       1.0 - float64(i)/float64(2*len(matches.Matches)),
			Link:        link,
			Source:      types.SearchSourceSlack,
		})
	}

	return out, nil
}

// MessageLink builds a permalink using the authenticated workspace URL
func (c *client) MessageLink(channelID types.ChannelID, ts, threadTS types.MessageTS) string {
	base := DefaultTeamURL
	if c.identity != nil && c.identity.TeamURL != "" {
		base = c.identity.TeamURL
	}
	return BuildMessageLink(base, channelID, ts, threadTS)
}

func (c *client) identityUserID() types.UserID {
	if c.identity == nil {
		return ""
	}
	return c.identity.UserID
}
