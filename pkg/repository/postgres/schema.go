package postgres

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// schema is applied statement by statement so a failure can be reported
// with the offending DDL. The vector extension must be installed on the
// server (pgvector); message_embeddings depends on it.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,

	`CREATE TABLE IF NOT EXISTS channels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		channel_type TEXT NOT NULL,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		extra JSONB NOT NULL DEFAULT '{}'
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		real_name TEXT NOT NULL DEFAULT '',
		display_name TEXT NOT NULL DEFAULT '',
		is_bot BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		extra JSONB NOT NULL DEFAULT '{}'
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		channel_id TEXT NOT NULL,
		ts TEXT NOT NULL,
		user_id TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL DEFAULT '',
		thread_ts TEXT NOT NULL DEFAULT '',
		reply_count INTEGER NOT NULL DEFAULT 0,
		is_edited BOOLEAN NOT NULL DEFAULT FALSE,
		message_type TEXT NOT NULL DEFAULT 'message',
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		extra JSONB NOT NULL DEFAULT '{}',
		UNIQUE (channel_id, ts)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_thread ON messages (channel_id, thread_ts)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_user ON messages (user_id)`,

	`CREATE TABLE IF NOT EXISTS reactions (
		id BIGSERIAL PRIMARY KEY,
		message_id BIGINT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reactions_message ON reactions (message_id)`,

	`CREATE TABLE IF NOT EXISTS message_embeddings (
		id BIGSERIAL PRIMARY KEY,
		message_id BIGINT NOT NULL UNIQUE REFERENCES messages(id) ON DELETE CASCADE,
		embedding vector(1536),
		model TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS sync_states (
		channel_id TEXT PRIMARY KEY,
		last_ts TEXT NOT NULL DEFAULT '',
		last_sync_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		text TEXT NOT NULL DEFAULT '',
		due_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		recurring BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		extra JSONB NOT NULL DEFAULT '{}'
	)`,
}

// Migrate creates the schema. Statements are idempotent, so re-running
// against an existing database is safe.
func (p *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to apply schema statement", goerr.V("stmt", stmt))
		}
	}
	return nil
}
