package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository defines catalog persistence operations.
type Repository interface {
	ListModules(ctx context.Context) ([]*Module, error)
	ListBadges(ctx context.Context) ([]*Badge, error)
}

// DBInterface defines the minimal interface needed by the repository
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	db DBInterface
}

// NewPostgresRepository creates a new catalog repository
func NewPostgresRepository(db DBInterface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListModules retrieves all modules in seeding order
func (r *PostgresRepository) ListModules(ctx context.Context) ([]*Module, error) {
	query, args, err := squirrel.Select("id", "title", "slug", "content", "created_at").
		From("modules").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	modules := []*Module{}
	if err := pgxscan.Select(ctx, r.db, &modules, query, args...); err != nil {
		return nil, fmt.Errorf("scanning modules: %w", err)
	}
	return modules, nil
}

// ListBadges retrieves all badges in seeding order
func (r *PostgresRepository) ListBadges(ctx context.Context) ([]*Badge, error) {
	query, args, err := squirrel.Select("id", "label", "criteria", "created_at").
		From("badges").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	badges := []*Badge{}
	if err := pgxscan.Select(ctx, r.db, &badges, query, args...); err != nil {
		return nil, fmt.Errorf("scanning badges: %w", err)
	}
	return badges, nil
}
