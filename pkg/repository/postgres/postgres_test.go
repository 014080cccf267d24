package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/repository/postgres"
)

func newTestRepo(t *testing.T) *postgres.Postgres {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	repo, err := postgres.New(ctx, dsn)
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.Migrate(ctx)).Required()
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// testTS returns a unique ts per call so tests can share one database
func testTS(t *testing.T, n int) types.MessageTS {
	return types.MessageTS(fmt.Sprintf("%d.%06d", time.Now().UnixNano()/1e9, n))
}

func TestPostgresMessageRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ts := testTS(t, 1)

	gt.NoError(t, repo.Channel().Upsert(ctx, &model.Channel{
		ID: "CTEST1", Name: "itest", Type: types.ChannelTypePublic,
	})).Required()

	msg := &model.Message{
		ChannelID: "CTEST1", TS: ts, UserID: "U2",
		Text: "hello", Type: "message", CreatedAt: time.Now().UTC(),
		Extra: model.Extra{"subtype": "plain"},
	}
	id, err := repo.Message().Store(ctx, msg, model.ReactionSnapshot{
		{Name: "+1", Count: 1, Users: []types.UserID{"U9"}},
	})
	gt.NoError(t, err).Required()

	stored, err := repo.Message().Get(ctx, "CTEST1", ts)
	gt.NoError(t, err).Required()
	gt.Value(t, stored).NotNil().Required()
	gt.Value(t, stored.ID).Equal(id)
	gt.Value(t, stored.Text).Equal("hello")

	// same key, same row, replaced reactions
	msg.Text = "hello (edited)"
	id2, err := repo.Message().Store(ctx, msg, model.ReactionSnapshot{
		{Name: "eyes", Count: 2, Users: []types.UserID{"U1", "U2"}},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, id2).Equal(id)

	rows, err := repo.Reaction().ListByMessage(ctx, id)
	gt.NoError(t, err).Required()
	gt.Array(t, rows).Length(2)
	for _, row := range rows {
		gt.Value(t, row.Name).Equal("eyes")
	}

	missing, err := repo.Message().Get(ctx, "CTEST1", "0.000001")
	gt.NoError(t, err).Required()
	gt.Value(t, missing).Nil()
}

func TestPostgresSyncState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state, err := repo.SyncState().Get(ctx, "CSYNCNONE")
	gt.NoError(t, err).Required()
	gt.Value(t, state).Nil()

	ts := testTS(t, 2)
	gt.NoError(t, repo.SyncState().Upsert(ctx, &model.SyncState{
		ChannelID: "CSYNC1", LastTS: ts,
	})).Required()

	state, err = repo.SyncState().Get(ctx, "CSYNC1")
	gt.NoError(t, err).Required()
	gt.Value(t, state).NotNil().Required()
	gt.Value(t, state.LastTS).Equal(ts)
}

func TestPostgresUserRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	gt.NoError(t, repo.User().Upsert(ctx, &model.User{
		ID: "UTEST1", Name: "alice", DisplayName: "Alice",
		Extra: model.Extra{"tz": "UTC"},
	})).Required()

	user, err := repo.User().Get(ctx, "UTEST1")
	gt.NoError(t, err).Required()
	gt.Value(t, user).NotNil().Required()
	gt.Value(t, user.BestName()).Equal("Alice")

	missing, err := repo.User().Get(ctx, "UNOPE")
	gt.NoError(t, err).Required()
	gt.Value(t, missing).Nil()
}
