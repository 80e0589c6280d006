package fallback

import (
	"context"
	"testing"
	"time"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func testFixtures() (*entity.Organization, *entity.Employee, *fakeUow) {
	orgId := uuid.MustParse("7f2a1c9e-1111-4f2f-9d3a-000000000001")
	org := &entity.Organization{Id: orgId, Name: "Acme Technologies", Currency: "INR"}
	employee := &entity.Employee{
		Id:             uuid.New(),
		OrganizationId: orgId,
		UserId:         uuid.New(),
		EmployeeCode:   "EMP-104",
		FullName:       "Priya Sharma",
		Role:           "Software Engineer",
		Department:     "Engineering",
		JoiningDate:    time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	uow := &fakeUow{
		payroll: &entity.PayrollRecord{
			OrganizationId:      orgId,
			EmployeeId:          employee.Id,
			BaseSalary:          30000,
			HRA:                 12000,
			ConveyanceAllowance: 1600,
			MedicalAllowance:    1250,
			PFDeduction:         3600,
			ProfessionalTax:     200,
			AnnualCTC:           600000,
		},
		balances: []*entity.LeaveBalance{
			{LeaveType: entity.LeaveTypeCasual, TotalAllotted: 12, LeavesTaken: 3, LeavesPendingApproval: 1, Year: time.Now().Year()},
		},
	}
	return org, employee, uow
}

func TestEngineGroundedAnswer(t *testing.T) {
	org, employee, uow := testFixtures()
	provider := &scriptedProvider{responses: []string{"Your take-home pay is ₹41,050.00 per month."}}
	engine := NewEngine(provider, nopLogger{})

	resp, err := engine.Answer(context.Background(), uow, org, employee, "how much do i take home")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, entity.ResponseSourceFallback, resp.Source)
	assert.Equal(t, "Your take-home pay is ₹41,050.00 per month.", resp.Answer)

	// The context embeds figures computed server-side via the entity
	// methods, never left to the model.
	require.Len(t, provider.systemPrompts, 1)
	prompt := provider.systemPrompts[0]
	assert.Contains(t, prompt, "₹44,850.00") // gross = base+hra+conveyance+medical
	assert.Contains(t, prompt, "₹41,050.00") // net = gross - deductions
	assert.Contains(t, prompt, "₹6,00,000.00")
	assert.Contains(t, prompt, "Casual Leave 8 remaining of 12")
}

func TestEngineHedgingTriggersSynthesis(t *testing.T) {
	org, employee, uow := testFixtures()
	uow.rawRows = []map[string]interface{}{{"base_salary": 30000.0}}

	provider := &scriptedProvider{responses: []string{
		"I don't have enough information to answer that.",
		"SELECT base_salary FROM payroll_records WHERE organization_id = '" + org.Id.String() + "' LIMIT 1",
		"Your base salary is ₹30,000.00 per month.",
	}}
	engine := NewEngine(provider, nopLogger{})

	resp, err := engine.Answer(context.Background(), uow, org, employee, "what was my salary revision")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, entity.ResponseSourceDatabase, resp.Source)
	assert.Equal(t, "Your base salary is ₹30,000.00 per month.", resp.Answer)
	assert.Contains(t, uow.lastRawQuery, "payroll_records")
}

func TestEngineRejectsUnsafeSynthesizedQuery(t *testing.T) {
	org, employee, uow := testFixtures()

	provider := &scriptedProvider{responses: []string{
		"I cannot answer that from the given facts.",
		"DROP TABLE payroll_records",
	}}
	engine := NewEngine(provider, nopLogger{})

	_, err := engine.Answer(context.Background(), uow, org, employee, "destroy everything")
	assert.ErrorIs(t, err, ErrQueryRejected)
	assert.Empty(t, uow.lastRawQuery, "rejected query must never execute")
}

func TestEngineEmptyResultSet(t *testing.T) {
	org, employee, uow := testFixtures()
	uow.rawRows = []map[string]interface{}{}

	provider := &scriptedProvider{responses: []string{
		"I do not have that information.",
		"SELECT * FROM policies WHERE organization_id = '" + org.Id.String() + "'",
	}}
	engine := NewEngine(provider, nopLogger{})

	resp, err := engine.Answer(context.Background(), uow, org, employee, "anything obscure")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, entity.ResponseSourceDatabase, resp.Source)
}

// fakeUow serves canned records to the engine under test.
type fakeUow struct {
	payroll      *entity.PayrollRecord
	balances     []*entity.LeaveBalance
	rawRows      []map[string]interface{}
	lastRawQuery string
}

var _ unitofwork.UnitOfWork = (*fakeUow)(nil)

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) OrganizationRepository() contract.OrganizationRepository       { return nil }
func (f *fakeUow) EmployeeRepository() contract.EmployeeRepository               { return nil }
func (f *fakeUow) PolicyRepository() contract.PolicyRepository                   { return nil }
func (f *fakeUow) ChatInteractionRepository() contract.ChatInteractionRepository { return nil }

func (f *fakeUow) LeaveBalanceRepository() contract.LeaveBalanceRepository {
	return &fakeLeaveRepo{balances: f.balances}
}

func (f *fakeUow) PayrollRepository() contract.PayrollRepository {
	return &fakePayrollRepo{record: f.payroll}
}

func (f *fakeUow) RawQueryRepository() contract.RawQueryRepository {
	return &fakeRawRepo{uow: f}
}

type fakePayrollRepo struct{ record *entity.PayrollRecord }

func (r *fakePayrollRepo) Create(ctx context.Context, record *entity.PayrollRecord) error {
	return nil
}

func (r *fakePayrollRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PayrollRecord, error) {
	return r.record, nil
}

type fakeLeaveRepo struct{ balances []*entity.LeaveBalance }

func (r *fakeLeaveRepo) Create(ctx context.Context, balance *entity.LeaveBalance) error { return nil }

func (r *fakeLeaveRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LeaveBalance, error) {
	if len(r.balances) == 0 {
		return nil, nil
	}
	return r.balances[0], nil
}

func (r *fakeLeaveRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LeaveBalance, error) {
	return r.balances, nil
}

func (r *fakeLeaveRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.balances)), nil
}

type fakeRawRepo struct{ uow *fakeUow }

func (r *fakeRawRepo) SelectRows(ctx context.Context, query string) ([]map[string]interface{}, error) {
	r.uow.lastRawQuery = query
	return r.uow.rawRows, nil
}
