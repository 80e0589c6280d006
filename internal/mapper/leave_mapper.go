package mapper

import (
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

type LeaveBalanceMapper struct{}

func NewLeaveBalanceMapper() *LeaveBalanceMapper {
	return &LeaveBalanceMapper{}
}

func (m *LeaveBalanceMapper) ToEntity(lb *model.LeaveBalance) *entity.LeaveBalance {
	if lb == nil {
		return nil
	}
	return &entity.LeaveBalance{
		Id:                    lb.Id,
		OrganizationId:        lb.OrganizationId,
		EmployeeId:            lb.EmployeeId,
		LeaveType:             lb.LeaveType,
		TotalAllotted:         lb.TotalAllotted,
		LeavesTaken:           lb.LeavesTaken,
		LeavesPendingApproval: lb.LeavesPendingApproval,
		Year:                  lb.Year,
		UpdatedAt:             lb.UpdatedAt,
	}
}

func (m *LeaveBalanceMapper) ToModel(lb *entity.LeaveBalance) *model.LeaveBalance {
	if lb == nil {
		return nil
	}
	return &model.LeaveBalance{
		Id:                    lb.Id,
		OrganizationId:        lb.OrganizationId,
		EmployeeId:            lb.EmployeeId,
		LeaveType:             lb.LeaveType,
		TotalAllotted:         lb.TotalAllotted,
		LeavesTaken:           lb.LeavesTaken,
		LeavesPendingApproval: lb.LeavesPendingApproval,
		Year:                  lb.Year,
		UpdatedAt:             lb.UpdatedAt,
	}
}

func (m *LeaveBalanceMapper) ToEntities(models []*model.LeaveBalance) []*entity.LeaveBalance {
	entities := make([]*entity.LeaveBalance, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
