package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant. Every record in the system hangs off exactly
// one organization and every read must filter on it.
type Organization struct {
	Id        uuid.UUID
	Name      string
	Currency  string // ISO 4217, e.g. "INR"
	CreatedAt time.Time
}
