package interfaces

import (
	"context"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// UserRepository provides storage operations for the user cache
type UserRepository interface {
	// Upsert inserts the user or updates it in place by ID
	Upsert(ctx context.Context, user *model.User) error

	// Get retrieves a user by ID, (nil, nil) when absent
	Get(ctx context.Context, id types.UserID) (*model.User, error)
}
