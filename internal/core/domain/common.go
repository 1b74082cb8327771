package domain

import "time"

// AuditFields records who created and last touched a row, and when.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a freshly created row. Self-registered users are their own actor.
func NewAuditFields(actor string, at time.Time) AuditFields {
	return AuditFields{CreatedAt: at, CreatedBy: actor, LastUpdatedAt: at, LastUpdatedBy: actor}
}
