package model

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// Channel is a synced Slack conversation
type Channel struct {
	ID        types.ChannelID
	Name      string
	Type      types.ChannelType
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Extra     Extra
}

// DisplayName returns the channel name, falling back to the raw ID
// for DMs and channels whose name is unknown
func (c *Channel) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID.String()
}
