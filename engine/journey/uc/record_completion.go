package uc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/idealday/idr/engine/core"
	"github.com/idealday/idr/engine/journey/model"
	"github.com/idealday/idr/pkg/logger"
)

// RecordCompletionInput is the single typed input for the record path; the
// HTTP boundary assembles it from either the request body or the query
// string before the use case runs.
type RecordCompletionInput struct {
	ClientID   string
	ModuleSlug string
	Rating     *float64
	Note       *string
}

// RecordCompletionOutput carries the created completion and its user.
type RecordCompletionOutput struct {
	User       *model.User
	Completion *model.Completion
}

// RecordCompletion use case for appending a completion record
type RecordCompletion struct {
	repo  Repository
	input *RecordCompletionInput
}

// NewRecordCompletion creates a new record completion use case
func NewRecordCompletion(repo Repository, input *RecordCompletionInput) *RecordCompletion {
	return &RecordCompletion{
		repo:  repo,
		input: input,
	}
}

// Execute upserts the user for the client ID, then appends one completion.
// The two writes are independent; a failure after the upsert leaves a
// harmless, reusable user row behind.
func (uc *RecordCompletion) Execute(ctx context.Context) (*RecordCompletionOutput, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(uc.input.ClientID) == "" {
		return nil, ErrClientIDRequired
	}
	if strings.TrimSpace(uc.input.ModuleSlug) == "" {
		return nil, ErrModuleSlugRequired
	}
	user, err := uc.repo.FindOrCreateUser(ctx, uc.input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("finding or creating user: %w", err)
	}
	id, err := core.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate completion ID: %w", err)
	}
	completion := &model.Completion{
		ID:         id,
		UserID:     user.ID,
		ModuleSlug: uc.input.ModuleSlug,
		Rating:     uc.input.Rating,
		Note:       uc.input.Note,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.repo.CreateCompletion(ctx, completion); err != nil {
		return nil, fmt.Errorf("creating completion: %w", err)
	}
	log.Info("Completion recorded",
		"client_id", uc.input.ClientID,
		"module_slug", uc.input.ModuleSlug,
		"completion_id", completion.ID,
	)
	return &RecordCompletionOutput{User: user, Completion: completion}, nil
}
