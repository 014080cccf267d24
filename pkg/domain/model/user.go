package model

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// User is a lazily cached Slack user profile. Once stored it is treated
// as authoritative until the process restarts.
type User struct {
	ID          types.UserID
	Name        string
	RealName    string
	DisplayName string
	IsBot       bool
	UpdatedAt   time.Time
	Extra       Extra
}

// BestName returns the most human-friendly name available
func (u *User) BestName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.RealName != "" {
		return u.RealName
	}
	if u.Name != "" {
		return u.Name
	}
	return u.ID.String()
}
