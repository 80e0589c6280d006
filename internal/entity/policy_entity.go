package entity

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Title          string
	Content        string
	Keywords       []string
	IsActive       bool
	LastReviewedAt time.Time
	CreatedAt      time.Time
}
