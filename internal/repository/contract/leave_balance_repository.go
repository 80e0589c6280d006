package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance *entity.LeaveBalance) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LeaveBalance, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LeaveBalance, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
