package entity

import (
	"time"

	"github.com/google/uuid"
)

// PayrollRecord stores the monthly salary components. Derived figures are
// computed through the methods below and never persisted, so the
// deterministic payroll handler and the grounded-context builder cannot
// drift apart.
type PayrollRecord struct {
	Id                  uuid.UUID
	OrganizationId      uuid.UUID
	EmployeeId          uuid.UUID
	BaseSalary          float64
	HRA                 float64
	ConveyanceAllowance float64
	MedicalAllowance    float64
	PFDeduction         float64
	ESIDeduction        float64
	ProfessionalTax     float64
	AnnualCTC           float64
	UpdatedAt           time.Time
}

func (p *PayrollRecord) MonthlyGross() float64 {
	return p.BaseSalary + p.HRA + p.ConveyanceAllowance + p.MedicalAllowance
}

func (p *PayrollRecord) TotalDeductions() float64 {
	return p.PFDeduction + p.ESIDeduction + p.ProfessionalTax
}

func (p *PayrollRecord) MonthlyNet() float64 {
	return p.MonthlyGross() - p.TotalDeductions()
}
