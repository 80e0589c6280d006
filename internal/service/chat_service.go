package service

import (
	"context"
	"encoding/json"
	"time"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assistant"
	"hr-assistant-be/pkg/nlp"

	"github.com/google/uuid"
)

// IChatService defines the assistant's inbound surface
type IChatService interface {
	ProcessQuery(ctx context.Context, userId, organizationId uuid.UUID, request *dto.ProcessQueryRequest) (*dto.ChatResponse, error)
	GetStatus(ctx context.Context) *dto.StatusResponse
	GetHistory(ctx context.Context, userId, organizationId uuid.UUID, limit, offset int) ([]*dto.GetHistoryResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	router           *assistant.Router
	classifier       *nlp.Classifier
	publisherService IPublisherService
	usageLimiter     *UsageLimiter
	logger           logger.ILogger

	threshold    float64
	providerName string
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	router *assistant.Router,
	classifier *nlp.Classifier,
	publisherService IPublisherService,
	usageLimiter *UsageLimiter,
	log logger.ILogger,
	threshold float64,
	providerName string,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		router:           router,
		classifier:       classifier,
		publisherService: publisherService,
		usageLimiter:     usageLimiter,
		logger:           log,
		threshold:        threshold,
		providerName:     providerName,
	}
}

// ProcessQuery runs the full pipeline for one free-text question. Whatever
// goes wrong inside, the caller gets a structured ChatResponse, worst case
// the generic apology; failures never surface as HTTP errors.
func (cs *chatService) ProcessQuery(ctx context.Context, userId, organizationId uuid.UUID, request *dto.ProcessQueryRequest) (response *dto.ChatResponse, err error) {
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			cs.logger.Error("ChatService", "panic during query processing", map[string]interface{}{"panic": r})
			response = apologyResponse()
			err = nil
		}
	}()

	if allowed, used, limErr := cs.usageLimiter.Allow(ctx, userId); limErr != nil {
		cs.logger.Warn("ChatService", "usage limiter unavailable, failing open", map[string]interface{}{"error": limErr.Error()})
	} else if !allowed {
		cs.logger.Info("ChatService", "daily query limit reached", map[string]interface{}{"user_id": userId.String(), "used": used})
		return &dto.ChatResponse{
			Success:        false,
			Answer:         "You have reached your daily question limit. Please try again tomorrow.",
			ResponseSource: entity.ResponseSourceFallback,
		}, nil
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	org, employee, err := cs.resolveCaller(ctx, uow, userId, organizationId)
	if err != nil {
		cs.logger.Error("ChatService", "caller lookup failed", map[string]interface{}{"error": err.Error()})
		return apologyResponse(), nil
	}
	if org == nil || employee == nil {
		return &dto.ChatResponse{
			Success:        false,
			Answer:         "I could not find your employee profile. Please contact HR.",
			ResponseSource: entity.ResponseSourceFallback,
		}, nil
	}

	routed := cs.router.Route(ctx, uow, org, employee, request.Query)

	response = &dto.ChatResponse{
		Success:        routed.Success,
		Answer:         routed.Answer,
		Confidence:     routed.Confidence,
		Intent:         string(routed.Intent),
		ResponseSource: routed.Source,
		Suggestions:    routed.Suggestions,
		Data:           routed.Data,
	}

	cs.publishInteraction(ctx, org.Id, userId, request.Query, response, time.Since(started))
	return response, nil
}

func (cs *chatService) resolveCaller(ctx context.Context, uow unitofwork.UnitOfWork, userId, organizationId uuid.UUID) (*entity.Organization, *entity.Employee, error) {
	org, err := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: organizationId})
	if err != nil {
		return nil, nil, err
	}
	if org == nil {
		return nil, nil, nil
	}

	employee, err := uow.EmployeeRepository().FindOne(ctx,
		specification.TenantOwnedBy{OrganizationID: organizationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, nil, err
	}
	return org, employee, nil
}

// publishInteraction puts the interaction on the log topic. Fire and
// forget: a publish failure is an operational problem, never the caller's.
func (cs *chatService) publishInteraction(ctx context.Context, organizationId, userId uuid.UUID, query string, response *dto.ChatResponse, latency time.Duration) {
	payload := dto.PublishInteractionMessage{
		OrganizationId: organizationId,
		UserId:         userId,
		Query:          query,
		Answer:         response.Answer,
		Intent:         response.Intent,
		Confidence:     response.Confidence,
		Source:         response.ResponseSource,
		LatencyMs:      latency.Milliseconds(),
		AskedAt:        time.Now(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		cs.logger.Error("ChatService", "failed to marshal interaction payload", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := cs.publisherService.Publish(ctx, data); err != nil {
		cs.logger.Error("ChatService", "failed to publish interaction", map[string]interface{}{"error": err.Error()})
	}
}

func (cs *chatService) GetStatus(ctx context.Context) *dto.StatusResponse {
	return &dto.StatusResponse{
		Status:              "ok",
		ClassifierReady:     cs.classifier.Ready(),
		CorpusSize:          cs.classifier.CorpusSize(),
		ConfidenceThreshold: cs.threshold,
		LLMProvider:         cs.providerName,
		Features: []string{
			"intent_classification",
			"deterministic_handlers",
			"grounded_fallback",
			"sql_synthesis",
			"interaction_logging",
		},
	}
}

func (cs *chatService) GetHistory(ctx context.Context, userId, organizationId uuid.UUID, limit, offset int) ([]*dto.GetHistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	interactions, err := uow.ChatInteractionRepository().FindAll(ctx,
		specification.TenantOwnedBy{OrganizationID: organizationId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GetHistoryResponse, 0, len(interactions))
	for _, it := range interactions {
		responses = append(responses, &dto.GetHistoryResponse{
			Id:         it.Id,
			Query:      it.Query,
			Answer:     it.Answer,
			Intent:     it.Intent,
			Confidence: it.Confidence,
			Source:     it.Source,
			CreatedAt:  it.CreatedAt,
		})
	}
	return responses, nil
}

func apologyResponse() *dto.ChatResponse {
	return &dto.ChatResponse{
		Success:        false,
		Answer:         constant.GenericApology,
		Confidence:     0,
		ResponseSource: entity.ResponseSourceFallback,
	}
}
