package notify

import (
	"context"
	"strings"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

// LogNotifier reports reaction changes through the logger. It stands in
// for richer channels (desktop notifications etc.) behind the same
// interface.
type LogNotifier struct{}

var _ interfaces.ReactionNotifier = &LogNotifier{}

// NewLogNotifier creates a notifier that logs reaction changes
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyReactionChange logs the new reaction set of the message
func (n *LogNotifier) NotifyReactionChange(ctx context.Context, msg *model.Message, snapshot model.ReactionSnapshot) error {
	names := make([]string, 0, len(snapshot))
	for _, g := range snapshot {
		names = append(names, g.Name)
	}

	logging.From(ctx).Info("reactions changed",
		"channel_id", msg.ChannelID,
		"ts", msg.TS,
		"reactions", strings.Join(names, ","))
	return nil
}
