package model

import (
	"time"

	"github.com/idealday/idr/engine/core"
)

// Completion records that a user performed a module's action. Completions
// are append-only; no update or delete path exists.
type Completion struct {
	ID         core.ID   `db:"id"          json:"id"`
	UserID     core.ID   `db:"user_id"     json:"user_id"`
	ModuleSlug string    `db:"module_slug" json:"module_slug"`
	Rating     *float64  `db:"rating"      json:"rating"`
	Note       *string   `db:"note"        json:"note"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
}
