package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

// SyncUseCase drives the incremental message sync. One instance is meant
// to run from a single loop; it is not safe for concurrent use.
type SyncUseCase struct {
	repo     interfaces.Repository
	slack    slacksvc.Service
	notifier interfaces.ReactionNotifier

	fetchLimit   int
	channelPause time.Duration

	// knownUsers marks user IDs already verified in storage this process
	// lifetime, so each author costs at most one lookup
	knownUsers map[types.UserID]struct{}
}

func newSyncUseCase(uc *UseCases) *SyncUseCase {
	return &SyncUseCase{
		repo:         uc.repo,
		slack:        uc.slack,
		notifier:     uc.notifier,
		fetchLimit:   uc.fetchLimit,
		channelPause: uc.channelPause,
		knownUsers:   map[types.UserID]struct{}{},
	}
}

// SyncStats summarizes one sync pass
type SyncStats struct {
	Channels        int
	Messages        int
	ThreadReplies   int
	ReactionChanges int
	Errors          int
}

// SyncChannels discovers the conversations the authenticated user is a
// member of and upserts them, returning how many were seen
func (u *SyncUseCase) SyncChannels(ctx context.Context) (int, error) {
	channels, err := u.slack.ListConversations(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to discover conversations")
	}

	for _, ch := range channels {
		if err := u.repo.Channel().Upsert(ctx, ch); err != nil {
			return 0, goerr.Wrap(err, "failed to store channel", goerr.V("channel_id", ch.ID))
		}
	}

	logging.From(ctx).Info("channel discovery finished", "channels", len(channels))
	return len(channels), nil
}

// SyncAllMessages syncs every active channel sequentially. Per-channel
// failures are logged and counted; they never abort the pass.
func (u *SyncUseCase) SyncAllMessages(ctx context.Context) (*SyncStats, error) {
	channels, err := u.repo.Channel().ListActive(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list channels for sync")
	}

	stats := &SyncStats{}
	for i, ch := range channels {
		if err := ctx.Err(); err != nil {
			return stats, goerr.Wrap(err, "sync interrupted")
		}

		if err := u.syncChannelMessages(ctx, ch, stats); err != nil {
			stats.Errors++
			logging.From(ctx).Warn("channel sync failed",
				"channel_id", ch.ID, "channel", ch.DisplayName(), "error", err)
		}
		stats.Channels++

		if i < len(channels)-1 {
			if err := sleepContext(ctx, u.channelPause); err != nil {
				return stats, err
			}
		}
	}

	logging.From(ctx).Info("message sync finished",
		"channels", stats.Channels,
		"messages", stats.Messages,
		"thread_replies", stats.ThreadReplies,
		"reaction_changes", stats.ReactionChanges,
		"errors", stats.Errors)
	return stats, nil
}

// syncChannelMessages pulls the channel's history beyond its cursor and
// stores it oldest first. The cursor advances only past messages that
// were stored successfully, so a storage failure is retried next cycle.
func (u *SyncUseCase) syncChannelMessages(ctx context.Context, ch *model.Channel, stats *SyncStats) error {
	logger := logging.From(ctx)

	state, err := u.repo.SyncState().Get(ctx, ch.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to read sync cursor")
	}
	var cursor types.MessageTS
	if state != nil {
		cursor = state.LastTS
	}

	history, err := u.slack.GetHistory(ctx, ch.ID, cursor, u.fetchLimit)
	if err != nil {
		if slacksvc.IsChannelGone(err) {
			logger.Debug("channel gone, skipping", "channel_id", ch.ID)
			return nil
		}
		return goerr.Wrap(err, "failed to fetch history")
	}

	// the API returns newest first; process oldest first so the cursor
	// can follow stored messages
	slices.Reverse(history)

	lastStored := cursor
	var storeErr error

	for _, hm := range history {
		if !hm.Message.TS.After(cursor) {
			continue
		}

		changed, err := u.storeMessage(ctx, hm)
		if err != nil {
			storeErr = goerr.Wrap(err, "failed to store message", goerr.V("ts", hm.Message.TS))
			break
		}
		stats.Messages++
		if changed {
			stats.ReactionChanges++
		}

		if hm.Message.IsThreadParent() {
			u.syncThread(ctx, ch.ID, hm.Message.TS, stats)
		}

		lastStored = hm.Message.TS
	}

	if lastStored.After(cursor) {
		if err := u.repo.SyncState().Upsert(ctx, &model.SyncState{
			ChannelID:  ch.ID,
			LastTS:     lastStored,
			LastSyncAt: time.Now(),
		}); err != nil {
			return goerr.Wrap(err, "failed to advance sync cursor")
		}
	}

	return storeErr
}

// syncThread stores one level of thread replies. Reply failures are
// logged and do not block the parent's cursor advance.
func (u *SyncUseCase) syncThread(ctx context.Context, channelID types.ChannelID, threadTS types.MessageTS, stats *SyncStats) {
	logger := logging.From(ctx)

	replies, err := u.slack.GetThreadReplies(ctx, channelID, threadTS)
	if err != nil {
		stats.Errors++
		logger.Warn("failed to fetch thread replies",
			"channel_id", channelID, "thread_ts", threadTS, "error", err)
		return
	}

	for _, reply := range replies {
		changed, err := u.storeMessage(ctx, reply)
		if err != nil {
			stats.Errors++
			logger.Warn("failed to store thread reply",
				"channel_id", channelID, "ts", reply.Message.TS, "error", err)
			continue
		}
		stats.ThreadReplies++
		if changed {
			stats.ReactionChanges++
		}
	}
}

// storeMessage caches the author, diffs the reaction snapshot against
// the stored one and persists message+reactions atomically. Returns
// whether the reaction set of a previously known message changed.
func (u *SyncUseCase) storeMessage(ctx context.Context, hm *slacksvc.HistoryMessage) (bool, error) {
	msg := hm.Message

	if msg.UserID != "" {
		u.ensureUser(ctx, msg.UserID)
	}

	var prevSnapshot model.ReactionSnapshot
	known := false
	prev, err := u.repo.Message().Get(ctx, msg.ChannelID, msg.TS)
	if err != nil {
		return false, err
	}
	if prev != nil {
		known = true
		rows, err := u.repo.Reaction().ListByMessage(ctx, prev.ID)
		if err != nil {
			return false, err
		}
		prevSnapshot = model.SnapshotFromRows(rows)
	}

	id, err := u.repo.Message().Store(ctx, msg, hm.Reactions)
	if err != nil {
		return false, err
	}
	msg.ID = id

	changed := known && !prevSnapshot.Equal(hm.Reactions)
	if changed && u.notifier != nil {
		if err := u.notifier.NotifyReactionChange(ctx, msg, hm.Reactions); err != nil {
			logging.From(ctx).Warn("reaction notification failed",
				"channel_id", msg.ChannelID, "ts", msg.TS, "error", err)
		}
	}
	return changed, nil
}

// ensureUser lazily fills the user cache. Lookup failures are logged
// only; an unresolvable author never blocks message storage.
func (u *SyncUseCase) ensureUser(ctx context.Context, userID types.UserID) {
	if _, ok := u.knownUsers[userID]; ok {
		return
	}

	logger := logging.From(ctx)

	cached, err := u.repo.User().Get(ctx, userID)
	if err != nil {
		logger.Warn("user cache lookup failed", "user_id", userID, "error", err)
		return
	}
	if cached != nil {
		u.knownUsers[userID] = struct{}{}
		return
	}

	user, err := u.slack.GetUser(ctx, userID)
	if err != nil {
		logger.Warn("failed to fetch user profile", "user_id", userID, "error", err)
		return
	}
	if err := u.repo.User().Upsert(ctx, user); err != nil {
		logger.Warn("failed to cache user", "user_id", userID, "error", err)
		return
	}
	u.knownUsers[userID] = struct{}{}
}

// sleepContext waits for d unless the context ends first
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "sync interrupted")
	}
}
