package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type ChatInteractionRepository interface {
	Create(ctx context.Context, interaction *entity.ChatInteraction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatInteraction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
