package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.EmployeeRepository())
	assert.NotNil(t, uow.LeaveBalanceRepository())
	assert.NotNil(t, uow.PayrollRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Employee Repository", func(t *testing.T) {
		count, err := uow.EmployeeRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Employee count: %d", count)
	})

	t.Run("Check Chat Interaction Repository", func(t *testing.T) {
		count, err := uow.ChatInteractionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatInteraction count: %d", count)
	})

	t.Run("Check Tenant Scoped Leave Lookup", func(t *testing.T) {
		orgId := uuid.New()
		employeeId := uuid.New()

		org := &entity.Organization{
			Id:       orgId,
			Name:     "Integration Test Org " + uuid.New().String(),
			Currency: "INR",
		}
		assert.NoError(t, uow.OrganizationRepository().Create(context.Background(), org))

		employee := &entity.Employee{
			Id:             employeeId,
			OrganizationId: orgId,
			UserId:         uuid.New(),
			EmployeeCode:   "IT-001",
			FullName:       "Integration Test Employee",
			Email:          "it-" + uuid.New().String() + "@example.com",
			JoiningDate:    time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		assert.NoError(t, uow.EmployeeRepository().Create(context.Background(), employee))

		balance := &entity.LeaveBalance{
			Id:                    uuid.New(),
			OrganizationId:        orgId,
			EmployeeId:            employeeId,
			LeaveType:             entity.LeaveTypeCasual,
			TotalAllotted:         12,
			LeavesTaken:           3,
			LeavesPendingApproval: 1,
			Year:                  time.Now().Year(),
		}
		assert.NoError(t, uow.LeaveBalanceRepository().Create(context.Background(), balance))

		found, err := uow.LeaveBalanceRepository().FindOne(context.Background(),
			specification.TenantOwnedBy{OrganizationID: orgId},
			specification.EmployeeOwnedBy{EmployeeID: employeeId},
			specification.ByLeaveType{LeaveType: entity.LeaveTypeCasual},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, 8, found.Remaining())
		}

		// Other tenant must not see it
		foreign, err := uow.LeaveBalanceRepository().FindOne(context.Background(),
			specification.TenantOwnedBy{OrganizationID: uuid.New()},
			specification.EmployeeOwnedBy{EmployeeID: employeeId},
		)
		assert.NoError(t, err)
		assert.Nil(t, foreign)
	})
}
