package unitofwork

import (
	"context"

	"hr-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	OrganizationRepository() contract.OrganizationRepository
	EmployeeRepository() contract.EmployeeRepository
	LeaveBalanceRepository() contract.LeaveBalanceRepository
	PayrollRepository() contract.PayrollRepository
	PolicyRepository() contract.PolicyRepository
	ChatInteractionRepository() contract.ChatInteractionRepository
	RawQueryRepository() contract.RawQueryRepository
}
