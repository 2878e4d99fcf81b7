package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gosimple/slug"
	"github.com/idealday/idr/engine/core"
	"github.com/idealday/idr/pkg/logger"
)

//go:embed seed/*.json
var seedFS embed.FS

type badgeSeed struct {
	Label    string `json:"label"`
	Criteria string `json:"criteria"`
}

// Seeder inserts the built-in module and badge catalog. Seeding is
// idempotent: rows already present are left untouched, so it is safe to run
// on every deploy.
type Seeder struct {
	db DBInterface
}

// NewSeeder creates a new catalog seeder
func NewSeeder(db DBInterface) *Seeder {
	return &Seeder{db: db}
}

// Seed loads the embedded seed data into the modules and badges tables.
func (s *Seeder) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)
	modules, err := s.seedModules(ctx)
	if err != nil {
		return err
	}
	badges, err := s.seedBadges(ctx)
	if err != nil {
		return err
	}
	log.Info("Catalog seeded", "modules", modules, "badges", badges)
	return nil
}

func (s *Seeder) seedModules(ctx context.Context) (int, error) {
	raw, err := seedFS.ReadFile("seed/modules.json")
	if err != nil {
		return 0, fmt.Errorf("reading module seed: %w", err)
	}
	var titleToSlug map[string]string
	if err := json.Unmarshal(raw, &titleToSlug); err != nil {
		return 0, fmt.Errorf("parsing module seed: %w", err)
	}
	count := 0
	for title, moduleSlug := range titleToSlug {
		if moduleSlug == "" {
			moduleSlug = slug.Make(title)
		}
		id, err := core.NewID()
		if err != nil {
			return count, fmt.Errorf("failed to generate module ID: %w", err)
		}
		query, args, err := squirrel.Insert("modules").
			Columns("id", "title", "slug", "content", "created_at").
			Values(id, title, moduleSlug, "", time.Now().UTC()).
			Suffix("ON CONFLICT (slug) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return count, fmt.Errorf("building module insert: %w", err)
		}
		tag, err := s.db.Exec(ctx, query, args...)
		if err != nil {
			return count, fmt.Errorf("inserting module %q: %w", moduleSlug, err)
		}
		count += int(tag.RowsAffected())
	}
	return count, nil
}

func (s *Seeder) seedBadges(ctx context.Context) (int, error) {
	raw, err := seedFS.ReadFile("seed/badges.json")
	if err != nil {
		return 0, fmt.Errorf("reading badge seed: %w", err)
	}
	var badges []badgeSeed
	if err := json.Unmarshal(raw, &badges); err != nil {
		return 0, fmt.Errorf("parsing badge seed: %w", err)
	}
	count := 0
	for _, badge := range badges {
		id, err := core.NewID()
		if err != nil {
			return count, fmt.Errorf("failed to generate badge ID: %w", err)
		}
		query, args, err := squirrel.Insert("badges").
			Columns("id", "label", "criteria", "created_at").
			Values(id, badge.Label, badge.Criteria, time.Now().UTC()).
			Suffix("ON CONFLICT (label) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return count, fmt.Errorf("building badge insert: %w", err)
		}
		tag, err := s.db.Exec(ctx, query, args...)
		if err != nil {
			return count, fmt.Errorf("inserting badge %q: %w", badge.Label, err)
		}
		count += int(tag.RowsAffected())
	}
	return count, nil
}
