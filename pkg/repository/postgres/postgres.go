package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
)

// Postgres is the PostgreSQL repository backend. Connections are taken
// from the pool per operation; no transaction spans more than one
// message write.
type Postgres struct {
	pool       *pgxpool.Pool
	channels   *channelRepository
	users      *userRepository
	messages   *messageRepository
	reactions  *reactionRepository
	syncStates *syncStateRepository
	reminders  *reminderRepository
	embeddings *embeddingRepository
}

var _ interfaces.Repository = &Postgres{}

func New(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, goerr.Wrap(err, "failed to connect to database")
	}

	return &Postgres{
		pool:       pool,
		channels:   &channelRepository{pool: pool},
		users:      &userRepository{pool: pool},
		messages:   &messageRepository{pool: pool},
		reactions:  &reactionRepository{pool: pool},
		syncStates: &syncStateRepository{pool: pool},
		reminders:  &reminderRepository{pool: pool},
		embeddings: &embeddingRepository{pool: pool},
	}, nil
}

func (p *Postgres) Channel() interfaces.ChannelRepository {
	return p.channels
}

func (p *Postgres) User() interfaces.UserRepository {
	return p.users
}

func (p *Postgres) Message() interfaces.MessageRepository {
	return p.messages
}

func (p *Postgres) Reaction() interfaces.ReactionRepository {
	return p.reactions
}

func (p *Postgres) SyncState() interfaces.SyncStateRepository {
	return p.syncStates
}

func (p *Postgres) Reminder() interfaces.ReminderRepository {
	return p.reminders
}

func (p *Postgres) Embedding() interfaces.EmbeddingRepository {
	return p.embeddings
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
