package entity

import (
	"time"

	"github.com/google/uuid"
)

// Answer sources for the interaction log and the API response.
const (
	ResponseSourceNLP      = "nlp_enhanced"
	ResponseSourceDatabase = "llm_database"
	ResponseSourceFallback = "fallback"
)

// ChatInteraction is one append-only query/answer log record.
type ChatInteraction struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	UserId         uuid.UUID
	Query          string
	Answer         string
	Intent         string
	Confidence     float64
	Source         string
	LatencyMs      int64
	CreatedAt      time.Time
}
