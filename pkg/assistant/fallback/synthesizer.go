package fallback

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant-be/pkg/llm"
)

const synthesizerSystemPrompt = `You are a SQL generator for an HR assistant.
%s

Rules:
- Output exactly one SELECT statement and nothing else. No explanation, no markdown.
- The statement MUST filter on organization_id = '%s'.
- When the question is about the asking employee, also filter employees.user_id = '%s' (join through employees where needed).
- Never use INSERT, UPDATE, DELETE, DROP, ALTER, CREATE or TRUNCATE.
- Limit results to at most 20 rows.`

// Synthesizer asks the model for a single scoped SELECT answering the
// user's question. Its output is untrusted until ValidateQuery passes.
type Synthesizer struct {
	provider llm.Provider
}

func NewSynthesizer(provider llm.Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

func (s *Synthesizer) Synthesize(ctx context.Context, query, organizationId, userId string) (string, error) {
	system := fmt.Sprintf(synthesizerSystemPrompt, schemaDescription, organizationId, userId)
	raw, err := s.provider.Complete(ctx, system, query, llm.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("synthesize query: %w", err)
	}
	return cleanGeneratedSQL(raw), nil
}

// cleanGeneratedSQL strips the markdown fences and commentary models wrap
// around SQL despite being told not to, and keeps only the first statement.
func cleanGeneratedSQL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```sql")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if i := strings.Index(s, ";"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
