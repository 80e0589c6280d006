package unitofwork

import (
	"context"
	"fmt"

	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) OrganizationRepository() contract.OrganizationRepository {
	return implementation.NewOrganizationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmployeeRepository() contract.EmployeeRepository {
	return implementation.NewEmployeeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LeaveBalanceRepository() contract.LeaveBalanceRepository {
	return implementation.NewLeaveBalanceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PayrollRepository() contract.PayrollRepository {
	return implementation.NewPayrollRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PolicyRepository() contract.PolicyRepository {
	return implementation.NewPolicyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatInteractionRepository() contract.ChatInteractionRepository {
	return implementation.NewChatInteractionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RawQueryRepository() contract.RawQueryRepository {
	return implementation.NewRawQueryRepository(u.getDB())
}
