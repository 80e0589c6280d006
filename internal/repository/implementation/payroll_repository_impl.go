package implementation

import (
	"context"
	"errors"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/mapper"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PayrollRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PayrollMapper
}

func NewPayrollRepository(db *gorm.DB) contract.PayrollRepository {
	return &PayrollRepositoryImpl{
		db:     db,
		mapper: mapper.NewPayrollMapper(),
	}
}

func (r *PayrollRepositoryImpl) Create(ctx context.Context, record *entity.PayrollRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PayrollRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PayrollRecord, error) {
	var m model.PayrollRecord
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}
