package assistant

import (
	"context"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/memory"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assistant/handler"
	"hr-assistant-be/pkg/nlp"
)

// Response is the routing outcome for one query, before the HTTP layer
// shapes it into a DTO.
type Response struct {
	Success     bool
	Answer      string
	Confidence  float64
	Intent      nlp.Intent
	Source      string
	Suggestions []string
	Data        map[string]interface{}
}

// FallbackEngine answers queries the deterministic path could not. It is
// the only component allowed to call an LLM.
type FallbackEngine interface {
	Answer(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string) (Response, error)
}

// Router is the confidence gate: classified queries at or above the
// threshold go to a deterministic family handler, everything else to the
// fallback engine. The fallback never sees a query the handlers could
// answer, and the handlers never guess.
type Router struct {
	classifier *nlp.Classifier
	handlers   map[nlp.Family]handler.IntentHandler
	fallback   FallbackEngine
	threshold  float64
	logger     logger.ILogger
}

func NewRouter(classifier *nlp.Classifier, fallback FallbackEngine, threshold float64, log logger.ILogger, policyCache *memory.PolicyCache) *Router {
	return &Router{
		classifier: classifier,
		fallback:   fallback,
		threshold:  threshold,
		logger:     log,
		handlers: map[nlp.Family]handler.IntentHandler{
			nlp.FamilyPersonal: handler.NewPersonalHandler(log),
			nlp.FamilyLeave:    handler.NewLeaveHandler(log),
			nlp.FamilyPayroll:  handler.NewPayrollHandler(log),
			nlp.FamilyPolicy:   handler.NewPolicyHandler(policyCache, log),
		},
	}
}

func (r *Router) Route(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string) Response {
	classification, err := r.classifier.Classify(query)
	if err != nil {
		r.logger.Error("Router", "classification unavailable", map[string]interface{}{"error": err.Error()})
		return r.routeFallback(ctx, uow, org, employee, query, nlp.ClassificationResult{})
	}

	if classification.Intent.Known() && classification.Confidence >= r.threshold {
		h := r.handlers[classification.Intent.Family()]
		result, err := h.Handle(ctx, uow, org, employee, classification)
		if err == nil {
			return Response{
				Success:    result.Success,
				Answer:     result.Answer,
				Confidence: classification.Confidence,
				Intent:     classification.Intent,
				Source:     entity.ResponseSourceNLP,
				Data:       result.Data,
			}
		}
		r.logger.Error("Router", "deterministic handler failed, trying fallback", map[string]interface{}{
			"intent": string(classification.Intent),
			"error":  err.Error(),
		})
	}

	return r.routeFallback(ctx, uow, org, employee, query, classification)
}

func (r *Router) routeFallback(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string, classification nlp.ClassificationResult) Response {
	if r.fallback != nil {
		resp, err := r.fallback.Answer(ctx, uow, org, employee, query)
		if err == nil {
			resp.Confidence = classification.Confidence
			resp.Intent = classification.Intent
			return resp
		}
		r.logger.Warn("Router", "fallback engine failed", map[string]interface{}{"error": err.Error()})
	}

	if !classification.Intent.Known() {
		return Response{
			Success:     false,
			Answer:      constant.DidNotUnderstand,
			Confidence:  classification.Confidence,
			Source:      entity.ResponseSourceFallback,
			Suggestions: constant.ExampleQueries,
		}
	}
	return Response{
		Success:    false,
		Answer:     constant.GenericApology,
		Confidence: classification.Confidence,
		Intent:     classification.Intent,
		Source:     entity.ResponseSourceFallback,
	}
}
