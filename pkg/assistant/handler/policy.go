package handler

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/memory"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

type PolicyHandler struct {
	cache  *memory.PolicyCache
	logger logger.ILogger
}

func NewPolicyHandler(cache *memory.PolicyCache, logger logger.ILogger) *PolicyHandler {
	return &PolicyHandler{cache: cache, logger: logger}
}

// policyKeywords maps each policy intent to the keyword matched against the
// policy's keyword list. policy.general has no keyword and lists titles.
var policyKeywords = map[nlp.Intent]string{
	nlp.IntentPolicyWFH:   "work from home",
	nlp.IntentPolicyLeave: "leave",
}

func (h *PolicyHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, classification nlp.ClassificationResult) (Result, error) {
	policies, err := h.activePolicies(ctx, uow, org)
	if err != nil {
		return Result{}, err
	}
	if len(policies) == 0 {
		return miss("No policy documents are published for your organization yet."), nil
	}

	keyword, hasKeyword := policyKeywords[classification.Intent]
	if !hasKeyword {
		return h.listTitles(policies), nil
	}

	match := matchPolicy(policies, keyword)
	if match == nil {
		return h.listTitles(policies), nil
	}

	answer := fmt.Sprintf("%s\n\n%s", match.Title, match.Content)
	return ok(answer, map[string]interface{}{
		"policy_title":     match.Title,
		"last_reviewed_at": match.LastReviewedAt.Format("2006-01-02"),
	}), nil
}

// activePolicies reads through the per-tenant cache; a miss hits the
// repository ordered by most recently reviewed first, so matchPolicy's
// first hit is always the freshest document.
func (h *PolicyHandler) activePolicies(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization) ([]*entity.Policy, error) {
	if cached, found := h.cache.Get(org.Id.String()); found {
		return cached, nil
	}

	policies, err := uow.PolicyRepository().FindAll(ctx,
		specification.TenantOwnedBy{OrganizationID: org.Id},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "last_reviewed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	h.cache.Save(org.Id.String(), policies)
	return policies, nil
}

func matchPolicy(policies []*entity.Policy, keyword string) *entity.Policy {
	keyword = strings.ToLower(keyword)
	for _, p := range policies {
		for _, k := range p.Keywords {
			if strings.Contains(strings.ToLower(k), keyword) {
				return p
			}
		}
		if strings.Contains(strings.ToLower(p.Title), keyword) {
			return p
		}
	}
	return nil
}

func (h *PolicyHandler) listTitles(policies []*entity.Policy) Result {
	var sb strings.Builder
	sb.WriteString("Here are the policies available to you:\n")
	titles := make([]string, 0, len(policies))
	for _, p := range policies {
		sb.WriteString(fmt.Sprintf("- %s\n", p.Title))
		titles = append(titles, p.Title)
	}
	sb.WriteString("Ask about any of them to see the full policy.")
	return ok(sb.String(), map[string]interface{}{"policies": titles})
}
