package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'INR'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}
