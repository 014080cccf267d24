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

type messageRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.MessageRepository = &messageRepository{}

const messageColumns = `id, channel_id, ts, user_id, text, thread_ts, reply_count, is_edited, message_type, created_at, updated_at, extra`

func (r *messageRepository) Store(ctx context.Context, msg *model.Message, reactions model.ReactionSnapshot) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO messages (channel_id, ts, user_id, text, thread_ts, reply_count, is_edited, message_type, created_at, extra)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (channel_id, ts) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			text = EXCLUDED.text,
			thread_ts = EXCLUDED.thread_ts,
			reply_count = EXCLUDED.reply_count,
			is_edited = EXCLUDED.is_edited,
			message_type = EXCLUDED.message_type,
			updated_at = now(),
			extra = EXCLUDED.extra
		RETURNING id`,
		msg.ChannelID.String(),
		msg.TS.String(),
		msg.UserID.String(),
		msg.Text,
		msg.ThreadTS.String(),
		msg.ReplyCount,
		msg.Edited,
		msg.Type,
		nullableTime(msg.CreatedAt),
		extraParam(msg.Extra),
	).Scan(&id)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to upsert message",
			goerr.V("channel_id", msg.ChannelID), goerr.V("ts", msg.TS))
	}

	if _, err := tx.Exec(ctx, `DELETE FROM reactions WHERE message_id = $1`, id); err != nil {
		return 0, goerr.Wrap(err, "failed to clear reactions", goerr.V("message_id", id))
	}
	for _, row := range reactions.Rows(id) {
		if _, err := tx.Exec(ctx,
			`INSERT INTO reactions (message_id, name, user_id) VALUES ($1, $2, $3)`,
			row.MessageID, row.Name, row.UserID.String()); err != nil {
			return 0, goerr.Wrap(err, "failed to insert reaction",
				goerr.V("message_id", id), goerr.V("name", row.Name))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, goerr.Wrap(err, "failed to commit message store")
	}
	return id, nil
}

func (r *messageRepository) Get(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (*model.Message, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE channel_id = $1 AND ts = $2`,
		channelID.String(), ts.String())

	msg, err := scanMessage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get message",
			goerr.V("channel_id", channelID), goerr.V("ts", ts))
	}
	return msg, nil
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)

	msg, err := scanMessage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get message", goerr.V("message_id", id))
	}
	return msg, nil
}

func (r *messageRepository) ListMentions(ctx context.Context, userID types.UserID, since time.Time, limit int) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE text LIKE '%' || $1 || '%' AND created_at > $2
		ORDER BY created_at DESC
		LIMIT $3`,
		"<@"+userID.String()+">", since, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list mentions", goerr.V("user_id", userID))
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepository) ListDirect(ctx context.Context, since time.Time, limit int) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+prefixedMessageColumns+` FROM messages m
		JOIN channels c ON m.channel_id = c.id
		WHERE c.channel_type IN ('im', 'mpim') AND m.created_at > $1
		ORDER BY m.created_at DESC
		LIMIT $2`,
		since, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list direct messages")
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepository) ListThreadActivity(ctx context.Context, userID types.UserID, since time.Time, limit int) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		WITH user_threads AS (
			SELECT DISTINCT channel_id, COALESCE(NULLIF(thread_ts, ''), ts) AS root_ts
			FROM messages
			WHERE user_id = $1
		)
		SELECT `+prefixedMessageColumns+` FROM messages m
		JOIN user_threads ut
			ON m.channel_id = ut.channel_id
			AND (m.ts = ut.root_ts OR m.thread_ts = ut.root_ts)
		WHERE m.user_id <> $1 AND m.created_at > $2
		ORDER BY m.created_at DESC
		LIMIT $3`,
		userID.String(), since, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list thread activity", goerr.V("user_id", userID))
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepository) SearchText(ctx context.Context, query string, limit int) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE text ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search messages", goerr.V("query", query))
	}
	defer rows.Close()
	return collectMessages(rows)
}

const prefixedMessageColumns = `m.id, m.channel_id, m.ts, m.user_id, m.text, m.thread_ts, m.reply_count, m.is_edited, m.message_type, m.created_at, m.updated_at, m.extra`

func scanMessage(row pgx.Row) (*model.Message, error) {
	var msg model.Message
	var channelID, ts, userID, threadTS string
	var createdAt *time.Time
	var extra map[string]any

	if err := row.Scan(&msg.ID, &channelID, &ts, &userID, &msg.Text, &threadTS,
		&msg.ReplyCount, &msg.Edited, &msg.Type, &createdAt, &msg.UpdatedAt, &extra); err != nil {
		return nil, err
	}

	msg.ChannelID = types.ChannelID(channelID)
	msg.TS = types.MessageTS(ts)
	msg.UserID = types.UserID(userID)
	msg.ThreadTS = types.MessageTS(threadTS)
	msg.CreatedAt = timeOrZero(createdAt)
	msg.Extra = model.Extra(extra)
	return &msg, nil
}

func collectMessages(rows pgx.Rows) ([]*model.Message, error) {
	var msgs []*model.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan message")
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
