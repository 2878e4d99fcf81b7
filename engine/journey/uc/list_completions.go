package uc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/idealday/idr/engine/journey/model"
)

const (
	// DefaultLimit applies when the caller does not request a limit.
	DefaultLimit = 10
	// MaxLimit caps the list size regardless of the requested value.
	MaxLimit = 50
)

// ListCompletionsInput is the typed input for the list path.
type ListCompletionsInput struct {
	ClientID string
	Limit    int
}

// ListCompletions use case for reading recent completions
type ListCompletions struct {
	repo  Repository
	input *ListCompletionsInput
}

// NewListCompletions creates a new list completions use case
func NewListCompletions(repo Repository, input *ListCompletionsInput) *ListCompletions {
	return &ListCompletions{
		repo:  repo,
		input: input,
	}
}

// Execute returns the most recent completions for the client, newest first.
// An unknown client ID yields an empty list, not an error.
func (uc *ListCompletions) Execute(ctx context.Context) ([]*model.Completion, error) {
	if strings.TrimSpace(uc.input.ClientID) == "" {
		return nil, ErrClientIDRequired
	}
	limit := uc.input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	user, err := uc.repo.FindUserByClientID(ctx, uc.input.ClientID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return []*model.Completion{}, nil
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	completions, err := uc.repo.ListCompletions(ctx, user.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	return completions, nil
}
