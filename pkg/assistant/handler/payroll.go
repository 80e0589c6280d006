package handler

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/currency"
	"hr-assistant-be/pkg/nlp"
)

type PayrollHandler struct {
	logger logger.ILogger
}

func NewPayrollHandler(logger logger.ILogger) *PayrollHandler {
	return &PayrollHandler{logger: logger}
}

func (h *PayrollHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, classification nlp.ClassificationResult) (Result, error) {
	record, err := uow.PayrollRepository().FindOne(ctx,
		specification.TenantOwnedBy{OrganizationID: org.Id},
		specification.EmployeeOwnedBy{EmployeeID: employee.Id},
	)
	if err != nil {
		return Result{}, err
	}
	if record == nil {
		return miss("No payroll record is available for you yet. Please contact HR."), nil
	}

	money := func(amount float64) string { return currency.Format(org.Currency, amount) }

	switch classification.Intent {
	case nlp.IntentPayrollBase:
		return ok(
			fmt.Sprintf("Your monthly base salary is %s.", money(record.BaseSalary)),
			map[string]interface{}{"base_salary": record.BaseSalary},
		), nil

	case nlp.IntentPayrollGross:
		return ok(
			fmt.Sprintf("Your monthly gross salary is %s.", money(record.MonthlyGross())),
			map[string]interface{}{"monthly_gross": record.MonthlyGross()},
		), nil

	case nlp.IntentPayrollNet:
		return ok(
			fmt.Sprintf("Your monthly net (take-home) salary is %s.", money(record.MonthlyNet())),
			map[string]interface{}{"monthly_net": record.MonthlyNet()},
		), nil

	case nlp.IntentPayrollCTC:
		return ok(
			fmt.Sprintf("Your annual CTC is %s.", money(record.AnnualCTC)),
			map[string]interface{}{"annual_ctc": record.AnnualCTC},
		), nil

	case nlp.IntentPayrollBreakdown:
		return ok(breakdownAnswer(record, money), breakdownData(record)), nil

	case nlp.IntentPayrollGeneral:
		answer := fmt.Sprintf(
			"Your monthly gross salary is %s and your net (take-home) salary is %s. Ask for a full salary breakdown to see every component.",
			money(record.MonthlyGross()), money(record.MonthlyNet()))
		return ok(answer, map[string]interface{}{
			"monthly_gross": record.MonthlyGross(),
			"monthly_net":   record.MonthlyNet(),
		}), nil

	default:
		h.logger.Warn("PayrollHandler", "unhandled intent", map[string]interface{}{"intent": string(classification.Intent)})
		return miss("I could not find that payroll information."), nil
	}
}

func breakdownAnswer(record *entity.PayrollRecord, money func(float64) string) string {
	var sb strings.Builder
	sb.WriteString("Here is your monthly salary breakdown:\n")
	sb.WriteString(fmt.Sprintf("- Base salary: %s\n", money(record.BaseSalary)))
	sb.WriteString(fmt.Sprintf("- HRA: %s\n", money(record.HRA)))
	sb.WriteString(fmt.Sprintf("- Conveyance allowance: %s\n", money(record.ConveyanceAllowance)))
	sb.WriteString(fmt.Sprintf("- Medical allowance: %s\n", money(record.MedicalAllowance)))
	sb.WriteString(fmt.Sprintf("- Gross: %s\n", money(record.MonthlyGross())))
	sb.WriteString(fmt.Sprintf("- PF deduction: %s\n", money(record.PFDeduction)))
	sb.WriteString(fmt.Sprintf("- ESI deduction: %s\n", money(record.ESIDeduction)))
	sb.WriteString(fmt.Sprintf("- Professional tax: %s\n", money(record.ProfessionalTax)))
	sb.WriteString(fmt.Sprintf("- Total deductions: %s\n", money(record.TotalDeductions())))
	sb.WriteString(fmt.Sprintf("- Net (take-home): %s", money(record.MonthlyNet())))
	return sb.String()
}

func breakdownData(record *entity.PayrollRecord) map[string]interface{} {
	return map[string]interface{}{
		"base_salary":          record.BaseSalary,
		"hra":                  record.HRA,
		"conveyance_allowance": record.ConveyanceAllowance,
		"medical_allowance":    record.MedicalAllowance,
		"pf_deduction":         record.PFDeduction,
		"esi_deduction":        record.ESIDeduction,
		"professional_tax":     record.ProfessionalTax,
		"monthly_gross":        record.MonthlyGross(),
		"total_deductions":     record.TotalDeductions(),
		"monthly_net":          record.MonthlyNet(),
		"annual_ctc":           record.AnnualCTC,
	}
}
