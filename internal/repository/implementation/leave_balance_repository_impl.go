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

type LeaveBalanceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LeaveBalanceMapper
}

func NewLeaveBalanceRepository(db *gorm.DB) contract.LeaveBalanceRepository {
	return &LeaveBalanceRepositoryImpl{
		db:     db,
		mapper: mapper.NewLeaveBalanceMapper(),
	}
}

func (r *LeaveBalanceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LeaveBalanceRepositoryImpl) Create(ctx context.Context, balance *entity.LeaveBalance) error {
	m := r.mapper.ToModel(balance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*balance = *r.mapper.ToEntity(m)
	return nil
}

func (r *LeaveBalanceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LeaveBalance, error) {
	var m model.LeaveBalance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *LeaveBalanceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LeaveBalance, error) {
	var models []*model.LeaveBalance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *LeaveBalanceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LeaveBalance{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
