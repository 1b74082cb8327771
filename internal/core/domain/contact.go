package domain

import "time"

// Contact is an edge of the caller's contact graph as seen by the ledger.
type Contact struct {
	UserID        string     `json:"userID"`
	ContactUserID string     `json:"contactUserID"`
	IsMuted       bool       `json:"isMuted"`
	MutedUntil    *time.Time `json:"mutedUntil,omitempty"`
}

// IsMutedAt reports whether the contact is muted at now. A mute without
// an expiry is permanent; otherwise it holds strictly before MutedUntil.
func (c Contact) IsMutedAt(now time.Time) bool {
	if !c.IsMuted {
		return false
	}
	if c.MutedUntil == nil {
		return true
	}
	return now.Before(*c.MutedUntil)
}
