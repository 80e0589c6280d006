package model

import (
	"time"

	"github.com/google/uuid"
)

type PayrollRecord struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId      uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeId          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BaseSalary          float64   `gorm:"type:numeric(12,2);not null;default:0"`
	HRA                 float64   `gorm:"column:hra;type:numeric(12,2);not null;default:0"`
	ConveyanceAllowance float64   `gorm:"type:numeric(12,2);not null;default:0"`
	MedicalAllowance    float64   `gorm:"type:numeric(12,2);not null;default:0"`
	PFDeduction         float64   `gorm:"column:pf_deduction;type:numeric(12,2);not null;default:0"`
	ESIDeduction        float64   `gorm:"column:esi_deduction;type:numeric(12,2);not null;default:0"`
	ProfessionalTax     float64   `gorm:"type:numeric(12,2);not null;default:0"`
	AnnualCTC           float64   `gorm:"column:annual_ctc;type:numeric(14,2);not null;default:0"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}
