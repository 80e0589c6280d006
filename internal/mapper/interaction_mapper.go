package mapper

import (
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

type ChatInteractionMapper struct{}

func NewChatInteractionMapper() *ChatInteractionMapper {
	return &ChatInteractionMapper{}
}

func (m *ChatInteractionMapper) ToEntity(ci *model.ChatInteraction) *entity.ChatInteraction {
	if ci == nil {
		return nil
	}
	return &entity.ChatInteraction{
		Id:             ci.Id,
		OrganizationId: ci.OrganizationId,
		UserId:         ci.UserId,
		Query:          ci.Query,
		Answer:         ci.Answer,
		Intent:         ci.Intent,
		Confidence:     ci.Confidence,
		Source:         ci.Source,
		LatencyMs:      ci.LatencyMs,
		CreatedAt:      ci.CreatedAt,
	}
}

func (m *ChatInteractionMapper) ToModel(ci *entity.ChatInteraction) *model.ChatInteraction {
	if ci == nil {
		return nil
	}
	return &model.ChatInteraction{
		Id:             ci.Id,
		OrganizationId: ci.OrganizationId,
		UserId:         ci.UserId,
		Query:          ci.Query,
		Answer:         ci.Answer,
		Intent:         ci.Intent,
		Confidence:     ci.Confidence,
		Source:         ci.Source,
		LatencyMs:      ci.LatencyMs,
		CreatedAt:      ci.CreatedAt,
	}
}

func (m *ChatInteractionMapper) ToEntities(models []*model.ChatInteraction) []*entity.ChatInteraction {
	entities := make([]*entity.ChatInteraction, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
