package mapper

import (
	"strings"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

type PolicyMapper struct{}

func NewPolicyMapper() *PolicyMapper {
	return &PolicyMapper{}
}

func (m *PolicyMapper) ToEntity(p *model.Policy) *entity.Policy {
	if p == nil {
		return nil
	}
	var keywords []string
	for _, k := range strings.Split(p.Keywords, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return &entity.Policy{
		Id:             p.Id,
		OrganizationId: p.OrganizationId,
		Title:          p.Title,
		Content:        p.Content,
		Keywords:       keywords,
		IsActive:       p.IsActive,
		LastReviewedAt: p.LastReviewedAt,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *PolicyMapper) ToModel(p *entity.Policy) *model.Policy {
	if p == nil {
		return nil
	}
	return &model.Policy{
		Id:             p.Id,
		OrganizationId: p.OrganizationId,
		Title:          p.Title,
		Content:        p.Content,
		Keywords:       strings.Join(p.Keywords, ","),
		IsActive:       p.IsActive,
		LastReviewedAt: p.LastReviewedAt,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *PolicyMapper) ToEntities(models []*model.Policy) []*entity.Policy {
	entities := make([]*entity.Policy, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
