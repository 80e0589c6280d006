package implementation

import (
	"context"
	"testing"

	"hr-assistant-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestEmployeeFindOneAppliesTenantScope(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewEmployeeRepository(gormDB)

	orgId := uuid.New()
	userId := uuid.New()
	employeeId := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "organization_id", "user_id", "employee_code", "full_name", "email", "role", "department"}).
		AddRow(employeeId.String(), orgId.String(), userId.String(), "EMP-104", "Priya Sharma", "priya@acme.example", "Software Engineer", "Engineering")

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE organization_id = \$1 AND user_id = \$2`).
		WillReturnRows(rows)

	employee, err := repo.FindOne(context.Background(),
		specification.TenantOwnedBy{OrganizationID: orgId},
		specification.UserOwnedBy{UserID: userId},
	)

	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, "EMP-104", employee.EmployeeCode)
	assert.Equal(t, orgId, employee.OrganizationId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeFindOneNotFoundIsNil(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewEmployeeRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	employee, err := repo.FindOne(context.Background(),
		specification.TenantOwnedBy{OrganizationID: uuid.New()},
	)

	assert.NoError(t, err)
	assert.Nil(t, employee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeFindManagerNilWithoutManager(t *testing.T) {
	gormDB, _ := newMockDB(t)
	repo := NewEmployeeRepository(gormDB)

	manager, err := repo.FindManager(context.Background(), uuid.New(), nil)
	assert.NoError(t, err)
	assert.Nil(t, manager)
}

func TestRawQuerySelectRowsIsReadOnly(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewRawQueryRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT base_salary FROM payroll_records`).
		WillReturnRows(sqlmock.NewRows([]string{"base_salary"}).AddRow(30000.0))
	mock.ExpectRollback()

	rows, err := repo.SelectRows(context.Background(), "SELECT base_salary FROM payroll_records WHERE organization_id = 'x'")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 30000.0, rows[0]["base_salary"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveBalanceFindAllScopedByYear(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewLeaveBalanceRepository(gormDB)

	orgId := uuid.New()
	employeeId := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "organization_id", "employee_id", "leave_type", "total_allotted", "leaves_taken", "leaves_pending_approval", "year"}).
		AddRow(uuid.New().String(), orgId.String(), employeeId.String(), "Casual Leave", 12, 3, 1, 2026).
		AddRow(uuid.New().String(), orgId.String(), employeeId.String(), "Sick Leave", 10, 2, 0, 2026)

	mock.ExpectQuery(`SELECT \* FROM "leave_balances" WHERE organization_id = \$1 AND employee_id = \$2 AND year = \$3`).
		WillReturnRows(rows)

	balances, err := repo.FindAll(context.Background(),
		specification.TenantOwnedBy{OrganizationID: orgId},
		specification.EmployeeOwnedBy{EmployeeID: employeeId},
		specification.ByYear{Year: 2026},
	)

	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, 8, balances[0].Remaining())
	assert.NoError(t, mock.ExpectationsWereMet())
}
