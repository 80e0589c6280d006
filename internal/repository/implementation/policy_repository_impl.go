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

type PolicyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PolicyMapper
}

func NewPolicyRepository(db *gorm.DB) contract.PolicyRepository {
	return &PolicyRepositoryImpl{
		db:     db,
		mapper: mapper.NewPolicyMapper(),
	}
}

func (r *PolicyRepositoryImpl) Create(ctx context.Context, policy *entity.Policy) error {
	m := r.mapper.ToModel(policy)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*policy = *r.mapper.ToEntity(m)
	return nil
}

func (r *PolicyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Policy, error) {
	var models []*model.Policy
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
