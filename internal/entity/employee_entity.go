package entity

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	UserId         uuid.UUID // login account the employee record belongs to
	EmployeeCode   string
	FullName       string
	Email          string
	Role           string
	Department     string
	Location       string
	JoiningDate    time.Time
	ManagerId      *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
