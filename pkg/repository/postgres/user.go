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

type userRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.UserRepository = &userRepository{}

func (r *userRepository) Upsert(ctx context.Context, user *model.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, real_name, display_name, is_bot, updated_at, extra)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			real_name = EXCLUDED.real_name,
			display_name = EXCLUDED.display_name,
			is_bot = EXCLUDED.is_bot,
			updated_at = now(),
			extra = EXCLUDED.extra`,
		user.ID.String(),
		user.Name,
		user.RealName,
		user.DisplayName,
		user.IsBot,
		extraParam(user.Extra),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert user", goerr.V("user_id", user.ID))
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	var user model.User
	var userID string
	var extra map[string]any

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, real_name, display_name, is_bot, updated_at, extra
		FROM users WHERE id = $1`, id.String(),
	).Scan(&userID, &user.Name, &user.RealName, &user.DisplayName,
		&user.IsBot, &user.UpdatedAt, &extra)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", id))
	}

	user.ID = types.UserID(userID)
	user.Extra = model.Extra(extra)
	return &user, nil
}
