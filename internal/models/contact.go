package models

import "time"

// Contact is the contacts table row.
type Contact struct {
	UserID        string     `db:"user_id"`
	ContactUserID string     `db:"contact_user_id"`
	IsMuted       bool       `db:"is_muted"`
	MutedUntil    *time.Time `db:"muted_until"`
	CreatedAt     time.Time  `db:"created_at"`
}
