package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatInteraction struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Query          string    `gorm:"type:text;not null"`
	Answer         string    `gorm:"type:text;not null"`
	Intent         string    `gorm:"type:varchar(100)"`
	Confidence     float64   `gorm:"type:numeric(4,3);not null;default:0"`
	Source         string    `gorm:"type:varchar(50);not null"`
	LatencyMs      int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (ChatInteraction) TableName() string {
	return "chat_interactions"
}
