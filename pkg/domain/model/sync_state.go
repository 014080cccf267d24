package model

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// SyncState is the per-channel sync cursor. LastTS is the newest message
// timestamp successfully persisted for the channel and never decreases.
type SyncState struct {
	ChannelID  types.ChannelID
	LastTS     types.MessageTS
	LastSyncAt time.Time
}
