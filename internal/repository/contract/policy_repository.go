package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type PolicyRepository interface {
	Create(ctx context.Context, policy *entity.Policy) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Policy, error)
}
