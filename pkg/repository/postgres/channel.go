package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type channelRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ChannelRepository = &channelRepository{}

const channelColumns = `id, name, channel_type, is_archived, created_at, updated_at, extra`

func (r *channelRepository) Upsert(ctx context.Context, channel *model.Channel) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO channels (id, name, channel_type, is_archived, created_at, updated_at, extra)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			channel_type = EXCLUDED.channel_type,
			is_archived = EXCLUDED.is_archived,
			updated_at = now(),
			extra = EXCLUDED.extra`,
		channel.ID.String(),
		channel.Name,
		channel.Type.String(),
		channel.Archived,
		nullableTime(channel.CreatedAt),
		extraParam(channel.Extra),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert channel", goerr.V("channel_id", channel.ID))
	}
	return nil
}

func (r *channelRepository) Get(ctx context.Context, id types.ChannelID) (*model.Channel, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE id = $1`, id.String())

	channel, err := scanChannel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get channel", goerr.V("channel_id", id))
	}
	return channel, nil
}

func (r *channelRepository) ListActive(ctx context.Context) ([]*model.Channel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE is_archived = FALSE ORDER BY id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list channels")
	}
	defer rows.Close()

	var channels []*model.Channel
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan channel")
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}

func scanChannel(row pgx.Row) (*model.Channel, error) {
	var channel model.Channel
	var channelID, channelType string
	var createdAt *time.Time
	var extra map[string]any

	if err := row.Scan(&channelID, &channel.Name, &channelType, &channel.Archived,
		&createdAt, &channel.UpdatedAt, &extra); err != nil {
		return nil, err
	}

	channel.ID = types.ChannelID(channelID)
	channel.Type = types.ChannelType(channelType)
	channel.CreatedAt = timeOrZero(createdAt)
	channel.Extra = model.Extra(extra)
	return &channel, nil
}
