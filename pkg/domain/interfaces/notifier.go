package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
)

// ReactionNotifier receives a side effect whenever the sync engine
// observes that a message's reaction set changed since last seen.
// Implementations are external collaborators (desktop notifications
// etc.); failures are logged and never block the sync.
type ReactionNotifier interface {
	NotifyReactionChange(ctx context.Context, msg *model.Message, snapshot model.ReactionSnapshot) error
}
