package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindManager resolves an employee's manager record within the same
	// tenant; nil when the employee has no manager assigned.
	FindManager(ctx context.Context, organizationId uuid.UUID, managerId *uuid.UUID) (*entity.Employee, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error)
}
