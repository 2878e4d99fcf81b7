package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/idealday/idr/engine/core"
	"github.com/idealday/idr/engine/journey/model"
	"github.com/idealday/idr/engine/journey/uc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository implements the journey repository interface using PostgreSQL
type Repository struct {
	db DBInterface
}

// DBInterface defines the minimal interface needed by the repository
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewRepository creates a new journey repository
func NewRepository(db DBInterface) uc.Repository {
	return &Repository{db: db}
}

// FindOrCreateUser upserts a user keyed on the unique client_id. The
// ON CONFLICT clause lets the constraint arbitrate concurrent creates; the
// no-op update makes RETURNING yield the existing row on conflict.
func (r *Repository) FindOrCreateUser(ctx context.Context, clientID string) (*model.User, error) {
	id, err := core.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}
	query, args, err := squirrel.Insert("users").
		Columns("id", "client_id", "created_at").
		Values(id, clientID, time.Now().UTC()).
		Suffix("ON CONFLICT (client_id) DO UPDATE SET client_id = EXCLUDED.client_id RETURNING id, client_id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building upsert query: %w", err)
	}
	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		return nil, fmt.Errorf("upserting user: %w", err)
	}
	return &user, nil
}

// FindUserByClientID retrieves a user by client_id
func (r *Repository) FindUserByClientID(ctx context.Context, clientID string) (*model.User, error) {
	query, args, err := squirrel.Select("id", "client_id", "created_at").
		From("users").
		Where(squirrel.Eq{"client_id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, uc.ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}

// CreateCompletion appends one immutable completion row
func (r *Repository) CreateCompletion(ctx context.Context, completion *model.Completion) error {
	query, args, err := squirrel.Insert("completions").
		Columns("id", "user_id", "module_slug", "rating", "note", "occurred_at").
		Values(
			completion.ID,
			completion.UserID,
			completion.ModuleSlug,
			completion.Rating,
			completion.Note,
			completion.OccurredAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting completion: %w", err)
	}
	return nil
}

// ListCompletions retrieves the most recent completions for a user. Ties on
// occurred_at break deterministically on the K-sortable id.
func (r *Repository) ListCompletions(ctx context.Context, userID core.ID, limit int) ([]*model.Completion, error) {
	query, args, err := squirrel.Select("id", "user_id", "module_slug", "rating", "note", "occurred_at").
		From("completions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	completions := []*model.Completion{}
	if err := pgxscan.Select(ctx, r.db, &completions, query, args...); err != nil {
		return nil, fmt.Errorf("scanning completions: %w", err)
	}
	return completions, nil
}
