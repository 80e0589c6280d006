package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantOwnedBy scopes every query to exactly one organization. All reads
// in the assistant subsystem carry this spec; an unscoped read is a bug.
type TenantOwnedBy struct {
	OrganizationID uuid.UUID
}

func (s TenantOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

// UserOwnedBy filters by the login account owning a record.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// EmployeeOwnedBy filters by the employee a record belongs to.
type EmployeeOwnedBy struct {
	EmployeeID uuid.UUID
}

func (s EmployeeOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_id = ?", s.EmployeeID)
}

// ByLeaveType filters leave balances by their canonical type name.
type ByLeaveType struct {
	LeaveType string
}

func (s ByLeaveType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("leave_type = ?", s.LeaveType)
}

// ByYear filters leave balances by calendar year.
type ByYear struct {
	Year int
}

func (s ByYear) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("year = ?", s.Year)
}

// ActiveOnly keeps records flagged active.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// KeywordLike matches policies whose keyword list contains the term.
type KeywordLike struct {
	Keyword string
}

func (s KeywordLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("keywords ILIKE ?", "%"+s.Keyword+"%")
}
