package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type PayrollRepository interface {
	Create(ctx context.Context, record *entity.PayrollRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PayrollRecord, error)
}
