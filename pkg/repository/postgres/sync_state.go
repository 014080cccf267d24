package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type syncStateRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.SyncStateRepository = &syncStateRepository{}

func (r *syncStateRepository) Get(ctx context.Context, channelID types.ChannelID) (*model.SyncState, error) {
	var state model.SyncState
	var cid, lastTS string

	err := r.pool.QueryRow(ctx,
		`SELECT channel_id, last_ts, last_sync_at FROM sync_states WHERE channel_id = $1`,
		channelID.String(),
	).Scan(&cid, &lastTS, &state.LastSyncAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get sync state", goerr.V("channel_id", channelID))
	}

	state.ChannelID = types.ChannelID(cid)
	state.LastTS = types.MessageTS(lastTS)
	return &state, nil
}

func (r *syncStateRepository) Upsert(ctx context.Context, state *model.SyncState) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sync_states (channel_id, last_ts, last_sync_at)
		VALUES ($1, $2, now())
		ON CONFLICT (channel_id) DO UPDATE SET
			last_ts = EXCLUDED.last_ts,
			last_sync_at = now()`,
		state.ChannelID.String(),
		state.LastTS.String(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert sync state", goerr.V("channel_id", state.ChannelID))
	}
	return nil
}
