package mapper

import (
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

type PayrollMapper struct{}

func NewPayrollMapper() *PayrollMapper {
	return &PayrollMapper{}
}

func (m *PayrollMapper) ToEntity(p *model.PayrollRecord) *entity.PayrollRecord {
	if p == nil {
		return nil
	}
	return &entity.PayrollRecord{
		Id:                  p.Id,
		OrganizationId:      p.OrganizationId,
		EmployeeId:          p.EmployeeId,
		BaseSalary:          p.BaseSalary,
		HRA:                 p.HRA,
		ConveyanceAllowance: p.ConveyanceAllowance,
		MedicalAllowance:    p.MedicalAllowance,
		PFDeduction:         p.PFDeduction,
		ESIDeduction:        p.ESIDeduction,
		ProfessionalTax:     p.ProfessionalTax,
		AnnualCTC:           p.AnnualCTC,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (m *PayrollMapper) ToModel(p *entity.PayrollRecord) *model.PayrollRecord {
	if p == nil {
		return nil
	}
	return &model.PayrollRecord{
		Id:                  p.Id,
		OrganizationId:      p.OrganizationId,
		EmployeeId:          p.EmployeeId,
		BaseSalary:          p.BaseSalary,
		HRA:                 p.HRA,
		ConveyanceAllowance: p.ConveyanceAllowance,
		MedicalAllowance:    p.MedicalAllowance,
		PFDeduction:         p.PFDeduction,
		ESIDeduction:        p.ESIDeduction,
		ProfessionalTax:     p.ProfessionalTax,
		AnnualCTC:           p.AnnualCTC,
		UpdatedAt:           p.UpdatedAt,
	}
}
