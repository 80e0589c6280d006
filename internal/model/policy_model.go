package model

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Content        string    `gorm:"type:text;not null"`
	Keywords       string    `gorm:"type:text"` // comma-separated lowercase keywords
	IsActive       bool      `gorm:"not null;default:true"`
	LastReviewedAt time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Policy) TableName() string {
	return "policies"
}
