package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProcessQueryRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

// ChatResponse is the single shape every query resolves to. Internal
// failures end up here too, worst case as a generic apology with
// confidence 0.
type ChatResponse struct {
	Success        bool                   `json:"success"`
	Answer         string                 `json:"answer"`
	Confidence     float64                `json:"confidence"`
	Intent         string                 `json:"intent,omitempty"`
	ResponseSource string                 `json:"response_source"`
	Suggestions    []string               `json:"suggestions,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
}

type StatusResponse struct {
	Status              string   `json:"status"`
	ClassifierReady     bool     `json:"classifier_ready"`
	CorpusSize          int      `json:"corpus_size"`
	ConfidenceThreshold float64  `json:"confidence_threshold"`
	LLMProvider         string   `json:"llm_provider"`
	Features            []string `json:"features"`
}

type GetHistoryResponse struct {
	Id         uuid.UUID `json:"id"`
	Query      string    `json:"query"`
	Answer     string    `json:"answer"`
	Intent     string    `json:"intent,omitempty"`
	Confidence float64   `json:"confidence"`
	Source     string    `json:"response_source"`
	CreatedAt  time.Time `json:"created_at"`
}

// PublishInteractionMessage is the payload put on the interaction log
// topic after every answered query.
type PublishInteractionMessage struct {
	OrganizationId uuid.UUID `json:"organization_id"`
	UserId         uuid.UUID `json:"user_id"`
	Query          string    `json:"query"`
	Answer         string    `json:"answer"`
	Intent         string    `json:"intent"`
	Confidence     float64   `json:"confidence"`
	Source         string    `json:"source"`
	LatencyMs      int64     `json:"latency_ms"`
	AskedAt        time.Time `json:"asked_at"`
}
