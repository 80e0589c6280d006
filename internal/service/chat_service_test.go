package service

import (
	"context"
	"errors"
	"testing"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	errorMessages []string
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Info(module, message string, details map[string]interface{})  {}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.errorMessages = append(l.errorMessages, message)
}
func (l *recordingLogger) Sync() error { return nil }

type recordingPublisher struct {
	published [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.published = append(p.published, payload)
	return nil
}

type stubOrgRepo struct {
	org *entity.Organization
	err error
}

func (r *stubOrgRepo) Create(ctx context.Context, org *entity.Organization) error { return nil }
func (r *stubOrgRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error) {
	return r.org, r.err
}

type stubUow struct {
	orgRepo *stubOrgRepo
}

func (u *stubUow) Begin(ctx context.Context) error { return nil }
func (u *stubUow) Commit() error                   { return nil }
func (u *stubUow) Rollback() error                 { return nil }

func (u *stubUow) OrganizationRepository() contract.OrganizationRepository { return u.orgRepo }
func (u *stubUow) EmployeeRepository() contract.EmployeeRepository         { return nil }
func (u *stubUow) LeaveBalanceRepository() contract.LeaveBalanceRepository { return nil }
func (u *stubUow) PayrollRepository() contract.PayrollRepository           { return nil }
func (u *stubUow) PolicyRepository() contract.PolicyRepository             { return nil }
func (u *stubUow) ChatInteractionRepository() contract.ChatInteractionRepository {
	return nil
}
func (u *stubUow) RawQueryRepository() contract.RawQueryRepository { return nil }

var _ unitofwork.UnitOfWork = (*stubUow)(nil)

type stubFactory struct {
	uow *stubUow
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newStubbedChatService(uow *stubUow, log *recordingLogger, pub *recordingPublisher) IChatService {
	return NewChatService(
		&stubFactory{uow: uow},
		nil,
		nil,
		pub,
		NewUsageLimiter(nil, 0),
		log,
		0.6,
		"ollama",
	)
}

func TestProcessQueryStoreFailureReturnsApology(t *testing.T) {
	log := &recordingLogger{}
	pub := &recordingPublisher{}
	uow := &stubUow{orgRepo: &stubOrgRepo{err: errors.New("db connection reset")}}
	svc := newStubbedChatService(uow, log, pub)

	resp, err := svc.ProcessQuery(context.Background(), uuid.New(), uuid.New(),
		&dto.ProcessQueryRequest{Query: "what is my ctc"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, constant.GenericApology, resp.Answer)
	assert.Zero(t, resp.Confidence)
	assert.Equal(t, entity.ResponseSourceFallback, resp.ResponseSource)
	assert.Contains(t, log.errorMessages, "caller lookup failed")
	assert.Empty(t, pub.published, "failed lookups must not be logged as interactions")
}

func TestProcessQueryUnknownOrganization(t *testing.T) {
	log := &recordingLogger{}
	pub := &recordingPublisher{}
	uow := &stubUow{orgRepo: &stubOrgRepo{}}
	svc := newStubbedChatService(uow, log, pub)

	resp, err := svc.ProcessQuery(context.Background(), uuid.New(), uuid.New(),
		&dto.ProcessQueryRequest{Query: "what is my ctc"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Answer, "could not find your employee profile")
	assert.Equal(t, entity.ResponseSourceFallback, resp.ResponseSource)
}
