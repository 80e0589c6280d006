package fallback

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrQueryRejected marks a synthesized query that failed the security
// policy. The rejection reason is for logs only and must never reach the
// end user.
var ErrQueryRejected = errors.New("synthesized query rejected")

// mutatingKeywords are matched on word boundaries, case-insensitively, so
// a column literally named "created_at" does not trip the "create" rule.
var mutatingKeywords = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|truncate)\b`)

// ValidateQuery enforces the security policy on a model-synthesized query:
// it must be a plain SELECT, it must not contain any mutating or structural
// keyword, and it must textually reference the caller's organization id.
// Any violation is a hard rejection; the query is never rewritten.
func ValidateQuery(query string, organizationId string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("%w: empty query", ErrQueryRejected)
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") {
		return fmt.Errorf("%w: does not begin with SELECT", ErrQueryRejected)
	}

	if m := mutatingKeywords.FindString(trimmed); m != "" {
		return fmt.Errorf("%w: contains mutating keyword %q", ErrQueryRejected, strings.ToLower(m))
	}

	if organizationId == "" || !strings.Contains(strings.ToLower(trimmed), strings.ToLower(organizationId)) {
		return fmt.Errorf("%w: missing organization scope", ErrQueryRejected)
	}

	return nil
}
