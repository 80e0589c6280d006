package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaveBalance struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId        uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeId            uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveType             string    `gorm:"type:varchar(50);not null"`
	TotalAllotted         int       `gorm:"not null;default:0"`
	LeavesTaken           int       `gorm:"not null;default:0"`
	LeavesPendingApproval int       `gorm:"not null;default:0"`
	Year                  int       `gorm:"not null;index"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
