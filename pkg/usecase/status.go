package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

const previewRunes = 120

// StatusUseCase builds the attention report from synced data. It never
// talks to the Slack API beyond the cached identity and link building.
type StatusUseCase struct {
	repo  interfaces.Repository
	slack slacksvc.Service
	limit int
}

func newStatusUseCase(uc *UseCases) *StatusUseCase {
	return &StatusUseCase{
		repo:  uc.repo,
		slack: uc.slack,
		limit: uc.statusLimit,
	}
}

// BuildReport ranks recent activity into priority tiers. A message is
// reported once, at the most urgent tier it qualifies for.
func (u *StatusUseCase) BuildReport(ctx context.Context, lookback time.Duration) (*model.Report, error) {
	identity := u.slack.Identity()
	if identity == nil {
		return nil, goerr.New("not authenticated")
	}

	since := time.Now().Add(-lookback)
	report := &model.Report{GeneratedAt: time.Now()}
	seen := map[string]struct{}{}

	mentions, err := u.repo.Message().ListMentions(ctx, identity.UserID, since, u.limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query mentions")
	}
	u.appendItems(ctx, report, seen, mentions, types.PriorityCritical, "mentions you")

	direct, err := u.repo.Message().ListDirect(ctx, since, u.limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query direct messages")
	}
	var fromOthers []*model.Message
	for _, msg := range direct {
		if msg.UserID != identity.UserID {
			fromOthers = append(fromOthers, msg)
		}
	}
	u.appendItems(ctx, report, seen, fromOthers, types.PriorityHigh, "direct message")

	threads, err := u.repo.Message().ListThreadActivity(ctx, identity.UserID, since, u.limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query thread activity")
	}
	u.appendItems(ctx, report, seen, dedupeByThread(threads), types.PriorityMedium, "new reply in your thread")

	sort.SliceStable(report.Items, func(i, j int) bool {
		a, b := report.Items[i], report.Items[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.TS.After(b.TS)
	})

	reminders, err := u.repo.Reminder().ListPending(ctx, identity.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query reminders")
	}
	report.Reminders = reminders

	return report, nil
}

func (u *StatusUseCase) appendItems(ctx context.Context, report *model.Report, seen map[string]struct{}, msgs []*model.Message, priority types.Priority, reason string) {
	for _, msg := range msgs {
		key := msg.ChannelID.String() + ":" + msg.TS.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		report.Items = append(report.Items, u.buildItem(ctx, msg, priority, reason))
	}
}

// buildItem enriches a message best effort: a missing channel or user
// row degrades to raw IDs, never to an error
func (u *StatusUseCase) buildItem(ctx context.Context, msg *model.Message, priority types.Priority, reason string) *model.StatusItem {
	logger := logging.From(ctx)

	item := &model.StatusItem{
		Priority:    priority,
		ChannelID:   msg.ChannelID,
		ChannelName: msg.ChannelID.String(),
		TS:          msg.TS,
		ThreadTS:    msg.ThreadTS,
		UserID:      msg.UserID,
		UserName:    msg.UserID.String(),
		TextPreview: preview(msg.Text),
		Timestamp:   msg.CreatedAt,
		Link:        u.slack.MessageLink(msg.ChannelID, msg.TS, msg.ThreadTS),
		Reason:      reason,
	}

	if ch, err := u.repo.Channel().Get(ctx, msg.ChannelID); err != nil {
		logger.Debug("channel enrichment failed", "channel_id", msg.ChannelID, "error", err)
	} else if ch != nil {
		item.ChannelName = ch.DisplayName()
	}

	if msg.UserID != "" {
		if user, err := u.repo.User().Get(ctx, msg.UserID); err != nil {
			logger.Debug("user enrichment failed", "user_id", msg.UserID, "error", err)
		} else if user != nil {
			item.UserName = user.BestName()
		}
	}

	return item
}

// dedupeByThread keeps only the newest reply per thread root. Input is
// newest first, so the first occurrence wins.
func dedupeByThread(msgs []*model.Message) []*model.Message {
	seen := map[string]struct{}{}
	var out []*model.Message
	for _, msg := range msgs {
		root := msg.ThreadTS
		if root == "" {
			root = msg.TS
		}
		key := msg.ChannelID.String() + ":" + root.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, msg)
	}
	return out
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
