package assistant

import (
	"context"
	"errors"
	"testing"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/memory"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"

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

// recordingFallback captures whether the engine was consulted.
type recordingFallback struct {
	calls    int
	response Response
	err      error
}

func (f *recordingFallback) Answer(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string) (Response, error) {
	f.calls++
	return f.response, f.err
}

func testRouter(fb FallbackEngine, threshold float64) *Router {
	classifier := nlp.NewClassifier(nlp.DefaultCorpus)
	if err := classifier.Build(); err != nil {
		panic(err)
	}
	return NewRouter(classifier, fb, threshold, nopLogger{}, memory.NewPolicyCache())
}

func fixtures() (*entity.Organization, *entity.Employee) {
	orgId := uuid.New()
	org := &entity.Organization{Id: orgId, Name: "Acme Technologies", Currency: "INR"}
	employee := &entity.Employee{
		Id:             uuid.New(),
		OrganizationId: orgId,
		UserId:         uuid.New(),
		EmployeeCode:   "EMP-104",
		FullName:       "Priya Sharma",
	}
	return org, employee
}

func TestRouteHighConfidenceNeverHitsFallback(t *testing.T) {
	fb := &recordingFallback{}
	router := testRouter(fb, 0.6)
	org, employee := fixtures()

	// personal.id resolves entirely from the employee record, no uow reads.
	resp := router.Route(context.Background(), nil, org, employee, "what is my employee id")

	assert.True(t, resp.Success)
	assert.Equal(t, entity.ResponseSourceNLP, resp.Source)
	assert.Equal(t, nlp.IntentPersonalID, resp.Intent)
	assert.GreaterOrEqual(t, resp.Confidence, 0.6)
	assert.Equal(t, "Your employee ID is EMP-104.", resp.Answer)
	assert.Zero(t, fb.calls, "fallback must not be consulted above threshold")
}

func TestRouteUnknownGoesToFallback(t *testing.T) {
	fb := &recordingFallback{response: Response{
		Success: true,
		Answer:  "Grounded answer.",
		Source:  entity.ResponseSourceFallback,
	}}
	router := testRouter(fb, 0.6)
	org, employee := fixtures()

	resp := router.Route(context.Background(), nil, org, employee, "explain blockchain consensus")

	require.Equal(t, 1, fb.calls)
	assert.True(t, resp.Success)
	assert.Equal(t, entity.ResponseSourceFallback, resp.Source)
	assert.Equal(t, nlp.IntentUnknown, resp.Intent)
	assert.Zero(t, resp.Confidence)
}

func TestRouteBelowThresholdGoesToFallback(t *testing.T) {
	fb := &recordingFallback{response: Response{
		Success: true,
		Answer:  "Grounded answer.",
		Source:  entity.ResponseSourceFallback,
	}}
	// Impossible threshold: even exact matches route to fallback.
	router := testRouter(fb, 1.1)
	org, employee := fixtures()

	resp := router.Route(context.Background(), nil, org, employee, "what is my employee id")

	assert.Equal(t, 1, fb.calls)
	assert.Equal(t, entity.ResponseSourceFallback, resp.Source)
	// The classifier's verdict is still reported alongside the answer.
	assert.Equal(t, nlp.IntentPersonalID, resp.Intent)
	assert.Greater(t, resp.Confidence, 0.0)
}

func TestRouteUnknownWithDeadFallback(t *testing.T) {
	fb := &recordingFallback{err: errors.New("upstream down")}
	router := testRouter(fb, 0.6)
	org, employee := fixtures()

	resp := router.Route(context.Background(), nil, org, employee, "explain blockchain consensus")

	assert.False(t, resp.Success)
	assert.Equal(t, constant.DidNotUnderstand, resp.Answer)
	assert.Equal(t, entity.ResponseSourceFallback, resp.Source)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestRouteKnownIntentWithDeadFallback(t *testing.T) {
	fb := &recordingFallback{err: errors.New("upstream down")}
	router := testRouter(fb, 1.1)
	org, employee := fixtures()

	resp := router.Route(context.Background(), nil, org, employee, "what is my employee id")

	assert.False(t, resp.Success)
	assert.Equal(t, constant.GenericApology, resp.Answer)
	assert.Empty(t, resp.Suggestions)
}

func TestRouteNilFallbackEngine(t *testing.T) {
	router := testRouter(nil, 0.6)
	org, employee := fixtures()

	resp := router.Route(context.Background(), nil, org, employee, "explain blockchain consensus")
	assert.False(t, resp.Success)
	assert.Equal(t, constant.DidNotUnderstand, resp.Answer)
}
