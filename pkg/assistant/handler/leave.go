package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

type LeaveHandler struct {
	logger logger.ILogger
}

func NewLeaveHandler(logger logger.ILogger) *LeaveHandler {
	return &LeaveHandler{logger: logger}
}

// balanceIntents maps each per-type balance intent to the canonical leave
// type stored in leave_balances. An extracted leave_type entity wins over
// the intent's own type so "sick leave balance" misclassified as casual
// still answers the right row.
var balanceIntents = map[nlp.Intent]string{
	nlp.IntentLeaveBalanceCasual: entity.LeaveTypeCasual,
	nlp.IntentLeaveBalanceSick:   entity.LeaveTypeSick,
	nlp.IntentLeaveBalanceEarned: entity.LeaveTypeEarned,
}

func (h *LeaveHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, classification nlp.ClassificationResult) (Result, error) {
	year := time.Now().Year()

	if leaveType, isBalance := balanceIntents[classification.Intent]; isBalance {
		if extracted, found := classification.Entities[nlp.EntityLeaveType]; found {
			leaveType = extracted
		}
		return h.balance(ctx, uow, org, employee, leaveType, year)
	}

	switch classification.Intent {
	case nlp.IntentLeavePending:
		return h.pending(ctx, uow, org, employee, year)
	case nlp.IntentLeaveSummary:
		return h.summary(ctx, uow, org, employee, year)
	default:
		h.logger.Warn("LeaveHandler", "unhandled intent", map[string]interface{}{"intent": string(classification.Intent)})
		return miss("I could not find that leave information."), nil
	}
}

func (h *LeaveHandler) balance(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, leaveType string, year int) (Result, error) {
	balance, err := uow.LeaveBalanceRepository().FindOne(ctx,
		specification.TenantOwnedBy{OrganizationID: org.Id},
		specification.EmployeeOwnedBy{EmployeeID: employee.Id},
		specification.ByLeaveType{LeaveType: leaveType},
		specification.ByYear{Year: year},
	)
	if err != nil {
		return Result{}, err
	}
	if balance == nil {
		return miss(fmt.Sprintf("No %s balance is recorded for you for %d.", strings.ToLower(leaveType), year)), nil
	}

	answer := fmt.Sprintf("You have %d %s remaining out of %d allotted.",
		balance.Remaining(), pluralLeaveNoun(leaveType), balance.TotalAllotted)
	return ok(answer, map[string]interface{}{
		"leave_type":       balance.LeaveType,
		"total_allotted":   balance.TotalAllotted,
		"taken":            balance.LeavesTaken,
		"pending_approval": balance.LeavesPendingApproval,
		"remaining":        balance.Remaining(),
		"year":             balance.Year,
	}), nil
}

func (h *LeaveHandler) pending(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, year int) (Result, error) {
	balances, err := h.allBalances(ctx, uow, org, employee, year)
	if err != nil {
		return Result{}, err
	}
	if len(balances) == 0 {
		return miss(fmt.Sprintf("No leave records are available for you for %d.", year)), nil
	}

	total := 0
	for _, b := range balances {
		total += b.LeavesPendingApproval
	}
	var answer string
	switch total {
	case 0:
		answer = "You have no leave requests pending approval."
	case 1:
		answer = "You have 1 leave request pending approval."
	default:
		answer = fmt.Sprintf("You have %d leave requests pending approval.", total)
	}
	return ok(answer, map[string]interface{}{"pending_approval": total, "year": year}), nil
}

func (h *LeaveHandler) summary(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, year int) (Result, error) {
	balances, err := h.allBalances(ctx, uow, org, employee, year)
	if err != nil {
		return Result{}, err
	}
	if len(balances) == 0 {
		return miss(fmt.Sprintf("No leave records are available for you for %d.", year)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Here is your leave summary for %d:\n", year))
	rows := make([]map[string]interface{}, 0, len(balances))
	for _, b := range balances {
		sb.WriteString(fmt.Sprintf("- %s: %d remaining of %d allotted (%d taken, %d pending approval)\n",
			b.LeaveType, b.Remaining(), b.TotalAllotted, b.LeavesTaken, b.LeavesPendingApproval))
		rows = append(rows, map[string]interface{}{
			"leave_type":       b.LeaveType,
			"total_allotted":   b.TotalAllotted,
			"taken":            b.LeavesTaken,
			"pending_approval": b.LeavesPendingApproval,
			"remaining":        b.Remaining(),
		})
	}
	return ok(strings.TrimRight(sb.String(), "\n"), map[string]interface{}{"balances": rows, "year": year}), nil
}

func (h *LeaveHandler) allBalances(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, year int) ([]*entity.LeaveBalance, error) {
	return uow.LeaveBalanceRepository().FindAll(ctx,
		specification.TenantOwnedBy{OrganizationID: org.Id},
		specification.EmployeeOwnedBy{EmployeeID: employee.Id},
		specification.ByYear{Year: year},
		specification.OrderBy{Field: "leave_type"},
	)
}

// pluralLeaveNoun turns "Casual Leave" into "casual leaves" for sentences
// like "You have 8 casual leaves remaining out of 12 allotted."
func pluralLeaveNoun(leaveType string) string {
	lower := strings.ToLower(leaveType)
	if strings.HasSuffix(lower, " leave") {
		return lower + "s"
	}
	return lower
}
