package handler

import (
	"context"
	"fmt"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

type PersonalHandler struct {
	logger logger.ILogger
}

func NewPersonalHandler(logger logger.ILogger) *PersonalHandler {
	return &PersonalHandler{logger: logger}
}

func (h *PersonalHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, classification nlp.ClassificationResult) (Result, error) {
	switch classification.Intent {
	case nlp.IntentPersonalID:
		return ok(
			fmt.Sprintf("Your employee ID is %s.", employee.EmployeeCode),
			map[string]interface{}{"employee_code": employee.EmployeeCode},
		), nil

	case nlp.IntentPersonalRole:
		if employee.Role == "" {
			return miss("Your role is not recorded in the system yet. Please contact HR."), nil
		}
		return ok(
			fmt.Sprintf("Your designation is %s.", employee.Role),
			map[string]interface{}{"role": employee.Role},
		), nil

	case nlp.IntentPersonalDepartment:
		if employee.Department == "" {
			return miss("Your department is not recorded in the system yet. Please contact HR."), nil
		}
		answer := fmt.Sprintf("You are part of the %s department", employee.Department)
		if employee.Location != "" {
			answer += fmt.Sprintf(", based in %s", employee.Location)
		}
		answer += "."
		return ok(answer, map[string]interface{}{
			"department": employee.Department,
			"location":   employee.Location,
		}), nil

	case nlp.IntentPersonalJoiningDate:
		if employee.JoiningDate.IsZero() {
			return miss("Your joining date is not recorded in the system yet. Please contact HR."), nil
		}
		formatted := employee.JoiningDate.Format("02 January 2006")
		return ok(
			fmt.Sprintf("You joined on %s.", formatted),
			map[string]interface{}{"joining_date": employee.JoiningDate.Format("2006-01-02")},
		), nil

	case nlp.IntentPersonalManager:
		manager, err := uow.EmployeeRepository().FindManager(ctx, org.Id, employee.ManagerId)
		if err != nil {
			return Result{}, err
		}
		if manager == nil {
			return miss("You do not have a manager assigned in the system."), nil
		}
		answer := fmt.Sprintf("Your manager is %s", manager.FullName)
		if manager.Email != "" {
			answer += fmt.Sprintf(" (%s)", manager.Email)
		}
		answer += "."
		return ok(answer, map[string]interface{}{
			"manager_name":  manager.FullName,
			"manager_email": manager.Email,
		}), nil

	default:
		h.logger.Warn("PersonalHandler", "unhandled intent", map[string]interface{}{"intent": string(classification.Intent)})
		return miss("I could not find that personal detail."), nil
	}
}
