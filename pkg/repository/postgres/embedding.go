package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type embeddingRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.EmbeddingRepository = &embeddingRepository{}

func (r *embeddingRepository) Upsert(ctx context.Context, messageID int64, vector []float32, embeddingModel string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO message_embeddings (message_id, embedding, model)
		VALUES ($1, $2::vector, $3)
		ON CONFLICT (message_id) DO UPDATE SET
			embedding = EXCLUDED.embedding,
			model = EXCLUDED.model,
			created_at = now()`,
		messageID, vectorLiteral(vector), embeddingModel)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert embedding", goerr.V("message_id", messageID))
	}
	return nil
}

func (r *embeddingRepository) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]*model.ScoredMessage, error) {
	literal := vectorLiteral(vector)
	rows, err := r.pool.Query(ctx, `
		SELECT `+prefixedMessageColumns+`, 1 - (e.embedding <=> $1::vector) AS similarity
		FROM message_embeddings e
		JOIN messages m ON e.message_id = m.id
		ORDER BY e.embedding <=> $1::vector
		LIMIT $2`,
		literal, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search embeddings")
	}
	defer rows.Close()

	var scored []*model.ScoredMessage
	for rows.Next() {
		var sm model.ScoredMessage
		msg, err := scanScoredMessage(rows, &sm.Score)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan similarity row")
		}
		sm.Message = msg
		scored = append(scored, &sm)
	}
	return scored, rows.Err()
}

func scanScoredMessage(row pgx.Row, score *float64) (*model.Message, error) {
	var msg model.Message
	var channelID, ts, userID, threadTS string
	var createdAt *time.Time
	var extra map[string]any

	if err := row.Scan(&msg.ID, &channelID, &ts, &userID, &msg.Text, &threadTS,
		&msg.ReplyCount, &msg.Edited, &msg.Type, &createdAt, &msg.UpdatedAt, &extra, score); err != nil {
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

func (r *embeddingRepository) ListMissing(ctx context.Context, limit int) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+prefixedMessageColumns+` FROM messages m
		LEFT JOIN message_embeddings e ON e.message_id = m.id
		WHERE e.id IS NULL AND m.text <> ''
		ORDER BY m.created_at DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list messages without embeddings")
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *embeddingRepository) Stats(ctx context.Context) (*model.EmbeddingStats, error) {
	var stats model.EmbeddingStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM messages),
			(SELECT count(*) FROM message_embeddings)`,
	).Scan(&stats.TotalMessages, &stats.EmbeddedMessages)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get embedding stats")
	}
	return &stats, nil
}
