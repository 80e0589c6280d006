package nlp

import (
	"regexp"
	"strings"
)

// leaveTypeSynonyms maps tokens found in normalized text to the canonical
// leave type names stored in the data store. Ordered so the first match
// wins deterministically.
var leaveTypeSynonyms = []struct {
	token     string
	canonical string
}{
	{"casual", "Casual Leave"},
	{"sick", "Sick Leave"},
	{"medical", "Sick Leave"},
	{"earned", "Earned Leave"},
	{"privilege", "Earned Leave"},
}

var (
	percentPattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:%|percent\b)`)
	// A bare number is not an amount; it needs a currency or quantity cue,
	// otherwise years ("2024") and counts get mistagged.
	amountPattern = regexp.MustCompile(`\b(\d+(?:,\d{2,3})*(?:\.\d+)?)\s*(?:k|lakh|lakhs|rs|rupees|inr)\b`)
)

// Entity keys produced by ExtractEntities.
const (
	EntityLeaveType  = "leave_type"
	EntityAmount     = "amount"
	EntityPercentage = "percentage"
)

// ExtractEntities tags spans in a normalized utterance using the static
// dictionaries and patterns. The map is empty (never nil) when nothing
// matches.
func ExtractEntities(normalized string) map[string]string {
	entities := make(map[string]string)

	for _, syn := range leaveTypeSynonyms {
		if containsWord(normalized, syn.token) {
			entities[EntityLeaveType] = syn.canonical
			break
		}
	}

	if m := percentPattern.FindStringSubmatch(normalized); m != nil {
		entities[EntityPercentage] = m[1]
	} else if m := amountPattern.FindStringSubmatch(normalized); m != nil {
		entities[EntityAmount] = m[1]
	}

	return entities
}

func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || s[i-1] == ' '
		after := i+len(word) == len(s) || s[i+len(word)] == ' '
		if before && after {
			return true
		}
		idx = i + len(word)
	}
}
