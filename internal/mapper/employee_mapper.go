package mapper

import (
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:             e.Id,
		OrganizationId: e.OrganizationId,
		UserId:         e.UserId,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		Email:          e.Email,
		Role:           e.Role,
		Department:     e.Department,
		Location:       e.Location,
		JoiningDate:    e.JoiningDate,
		ManagerId:      e.ManagerId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EmployeeMapper) ToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	return &model.Employee{
		Id:             e.Id,
		OrganizationId: e.OrganizationId,
		UserId:         e.UserId,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		Email:          e.Email,
		Role:           e.Role,
		Department:     e.Department,
		Location:       e.Location,
		JoiningDate:    e.JoiningDate,
		ManagerId:      e.ManagerId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EmployeeMapper) ToEntities(models []*model.Employee) []*entity.Employee {
	entities := make([]*entity.Employee, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}

type OrganizationMapper struct{}

func NewOrganizationMapper() *OrganizationMapper {
	return &OrganizationMapper{}
}

func (m *OrganizationMapper) ToEntity(o *model.Organization) *entity.Organization {
	if o == nil {
		return nil
	}
	return &entity.Organization{
		Id:        o.Id,
		Name:      o.Name,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
	}
}

func (m *OrganizationMapper) ToModel(o *entity.Organization) *model.Organization {
	if o == nil {
		return nil
	}
	return &model.Organization{
		Id:        o.Id,
		Name:      o.Name,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
	}
}
