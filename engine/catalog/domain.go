package catalog

import (
	"time"

	"github.com/idealday/idr/engine/core"
)

// Module is a coaching module users can complete.
type Module struct {
	ID        core.ID   `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Slug      string    `db:"slug"       json:"slug"`
	Content   string    `db:"content"    json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Badge is an achievement users can earn by completing modules.
type Badge struct {
	ID        core.ID   `db:"id"         json:"id"`
	Label     string    `db:"label"      json:"label"`
	Criteria  string    `db:"criteria"   json:"criteria"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
