package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
)

// ReactionRepository provides read access to stored reaction snapshots.
// Writes go through MessageRepository.Store, which replaces a message's
// rows wholesale.
type ReactionRepository interface {
	// ListByMessage retrieves the current reaction rows for a message
	ListByMessage(ctx context.Context, messageID int64) ([]*model.Reaction, error)
}
