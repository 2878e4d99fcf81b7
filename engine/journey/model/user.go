package model

import (
	"time"

	"github.com/idealday/idr/engine/core"
)

// User is a pseudo-identity keyed by a caller-supplied client ID. Users are
// created lazily on first completion and never deleted.
type User struct {
	ID        core.ID   `db:"id"         json:"id"`
	ClientID  string    `db:"client_id"  json:"client_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
