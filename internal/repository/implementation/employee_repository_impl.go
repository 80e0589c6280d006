package implementation

import (
	"context"
	"errors"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/mapper"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmployeeMapper
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.ToModel(employee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	var m model.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *EmployeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	var models []*model.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Employee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EmployeeRepositoryImpl) FindManager(ctx context.Context, organizationId uuid.UUID, managerId *uuid.UUID) (*entity.Employee, error) {
	if managerId == nil {
		return nil, nil
	}
	return r.FindOne(ctx,
		specification.ByID{ID: *managerId},
		specification.TenantOwnedBy{OrganizationID: organizationId},
	)
}

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) contract.OrganizationRepository {
	return &OrganizationRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *entity.Organization) error {
	m := r.mapper.ToModel(org)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*org = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrganizationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error) {
	var m model.Organization
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
