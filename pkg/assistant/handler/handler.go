package handler

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

// Result is what a deterministic handler produces for one classified query.
// Success=false means the intent was understood but the data to answer it is
// missing; the router turns that into a polite miss, never an error page.
type Result struct {
	Success bool
	Answer  string
	Data    map[string]interface{}
}

// IntentHandler answers every intent of one family from repository data.
// Implementations must not mutate state: the unit of work they receive is
// read-only for the duration of the request.
type IntentHandler interface {
	Handle(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, classification nlp.ClassificationResult) (Result, error)
}

func miss(answer string) Result {
	return Result{Success: false, Answer: answer}
}

func ok(answer string, data map[string]interface{}) Result {
	return Result{Success: true, Answer: answer, Data: data}
}
