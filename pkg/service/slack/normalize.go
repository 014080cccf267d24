package slack

import (
	"time"

	"github.com/slack-go/slack"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// channelFromAPI converts a raw conversation record into the domain
// channel. The conversation kind is derived once here from the boolean
// flags on the record.
func channelFromAPI(conv slack.Channel) *model.Channel {
	name := conv.Name
	if name == "" {
		// DMs have no name; fall back to the peer user ID
		name = conv.User
	}

	extra := model.Extra{}
	if conv.Topic.Value != "" {
		extra["topic"] = conv.Topic.Value
	}
	if conv.Purpose.Value != "" {
		extra["purpose"] = conv.Purpose.Value
	}
	if conv.NumMembers > 0 {
		extra["num_members"] = conv.NumMembers
	}

	return &model.Channel{
		ID:        types.ChannelID(conv.ID),
		Name:      name,
		Type:      channelType(conv),
		Archived:  conv.IsArchived,
		CreatedAt: conv.Created.Time(),
		Extra:     extra,
	}
}

func channelType(conv slack.Channel) types.ChannelType {
	switch {
	case conv.IsIM:
		return types.ChannelTypeDM
	case conv.IsMpIM:
		return types.ChannelTypeGroupDM
	case conv.IsPrivate:
		return types.ChannelTypePrivate
	default:
		return types.ChannelTypePublic
	}
}

// historyFromAPI normalizes one raw message plus its reaction snapshot
func historyFromAPI(channelID types.ChannelID, m slack.Message) *HistoryMessage {
	ts := types.MessageTS(m.Timestamp)

	msgType := m.Type
	if msgType == "" {
		msgType = "message"
	}

	extra := model.Extra{}
	if m.SubType != "" {
		extra["subtype"] = m.SubType
	}
	if m.ClientMsgID != "" {
		extra["client_msg_id"] = m.ClientMsgID
	}
	if m.BotID != "" {
		extra["bot_id"] = m.BotID
	}

	msg := &model.Message{
		ChannelID:  channelID,
		TS:         ts,
		UserID:     types.UserID(m.User),
		Text:       m.Text,
		ThreadTS:   types.MessageTS(m.ThreadTimestamp),
		ReplyCount: m.ReplyCount,
		Edited:     m.Edited != nil,
		Type:       msgType,
		CreatedAt:  ts.Time(),
	}

	var snapshot model.ReactionSnapshot
	for _, r := range m.Reactions {
		users := make([]types.UserID, 0, len(r.Users))
		for _, u := range r.Users {
			users = append(users, types.UserID(u))
		}
		snapshot = append(snapshot, model.ReactionGroup{
			Name:  r.Name,
			Count: r.Count,
			Users: users,
		})
	}

	return &HistoryMessage{Message: msg, Reactions: snapshot}
}

// userFromAPI converts a raw user record into the domain user
func userFromAPI(u *slack.User) *model.User {
	extra := model.Extra{}
	if u.TZ != "" {
		extra["tz"] = u.TZ
	}
	if u.Profile.Title != "" {
		extra["title"] = u.Profile.Title
	}

	return &model.User{
		ID:          types.UserID(u.ID),
		Name:        u.Name,
		RealName:    u.RealName,
		DisplayName: u.Profile.DisplayName,
		IsBot:       u.IsBot,
		Extra:       extra,
	}
}

// reminderFromAPI converts a raw reminder record into the domain
// reminder, falling back to the authenticated user when the record has
// no owner
func reminderFromAPI(r *slack.Reminder, fallbackUser types.UserID) *model.Reminder {
	userID := types.UserID(r.User)
	if userID == "" {
		userID = fallbackUser
	}

	reminder := &model.Reminder{
		ID:        r.ID,
		UserID:    userID,
		Text:      r.Text,
		Recurring: r.Recurring,
	}
	if r.Time > 0 {
		reminder.DueAt = time.Unix(int64(r.Time), 0)
	}
	if r.CompleteTS > 0 {
		reminder.CompletedAt = time.Unix(int64(r.CompleteTS), 0)
	}
	return reminder
}
