package uc

import (
	"context"

	"github.com/idealday/idr/engine/core"
	"github.com/idealday/idr/engine/journey/model"
)

// Repository defines the persistence operations the journey use cases need.
type Repository interface {
	// FindOrCreateUser atomically upserts a user keyed on the unique
	// client_id; the storage layer arbitrates concurrent creation races.
	FindOrCreateUser(ctx context.Context, clientID string) (*model.User, error)
	// FindUserByClientID returns ErrUserNotFound when no user exists.
	FindUserByClientID(ctx context.Context, clientID string) (*model.User, error)
	CreateCompletion(ctx context.Context, completion *model.Completion) error
	// ListCompletions returns completions for the user ordered by
	// occurred_at descending, at most limit entries.
	ListCompletions(ctx context.Context, userID core.ID, limit int) ([]*model.Completion, error)
}
