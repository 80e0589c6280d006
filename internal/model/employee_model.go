package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	EmployeeCode   string     `gorm:"type:varchar(50);not null"`
	FullName       string     `gorm:"type:varchar(255);not null"`
	Email          string     `gorm:"type:varchar(255);not null"`
	Role           string     `gorm:"type:varchar(100)"`
	Department     string     `gorm:"type:varchar(100)"`
	Location       string     `gorm:"type:varchar(100)"`
	JoiningDate    time.Time  `gorm:"type:date"`
	ManagerId      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
