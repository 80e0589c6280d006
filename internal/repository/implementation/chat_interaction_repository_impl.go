package implementation

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/mapper"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatInteractionMapper
}

func NewChatInteractionRepository(db *gorm.DB) contract.ChatInteractionRepository {
	return &ChatInteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatInteractionMapper(),
	}
}

func (r *ChatInteractionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatInteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.ChatInteraction) error {
	m := r.mapper.ToModel(interaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatInteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatInteraction, error) {
	var models []*model.ChatInteraction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ChatInteractionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatInteraction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
