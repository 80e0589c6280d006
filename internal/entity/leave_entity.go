package entity

import (
	"time"

	"github.com/google/uuid"
)

// Canonical leave type names as stored in leave_balances.leave_type.
const (
	LeaveTypeCasual = "Casual Leave"
	LeaveTypeSick   = "Sick Leave"
	LeaveTypeEarned = "Earned Leave"
)

type LeaveBalance struct {
	Id                    uuid.UUID
	OrganizationId        uuid.UUID
	EmployeeId            uuid.UUID
	LeaveType             string
	TotalAllotted         int
	LeavesTaken           int
	LeavesPendingApproval int
	Year                  int
	UpdatedAt             time.Time
}

// Remaining is the single source of the balance arithmetic. It may go
// negative when upstream data is inconsistent; repairing that is not this
// subsystem's job.
func (lb *LeaveBalance) Remaining() int {
	return lb.TotalAllotted - lb.LeavesTaken - lb.LeavesPendingApproval
}
