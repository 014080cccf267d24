package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

type reactionRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ReactionRepository = &reactionRepository{}

func (r *reactionRepository) ListByMessage(ctx context.Context, messageID int64) ([]*model.Reaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, message_id, name, user_id, created_at
		FROM reactions WHERE message_id = $1
		ORDER BY id`,
		messageID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reactions", goerr.V("message_id", messageID))
	}
	defer rows.Close()

	var reactions []*model.Reaction
	for rows.Next() {
		var reaction model.Reaction
		var userID string
		if err := rows.Scan(&reaction.ID, &reaction.MessageID, &reaction.Name,
			&userID, &reaction.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan reaction")
		}
		reaction.UserID = types.UserID(userID)
		reactions = append(reactions, &reaction)
	}
	return reactions, rows.Err()
}
