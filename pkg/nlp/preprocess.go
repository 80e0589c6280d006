package nlp

import (
	"strings"
)

// synonymRewrites maps colloquial phrasing to the canonical wording the
// corpus is written in. Longer phrases are listed first so they win over
// their substrings during rewrite.
var synonymRewrites = []struct {
	from string
	to   string
}{
	{"take home salary", "monthly net salary"},
	{"take home pay", "monthly net salary"},
	{"take home", "monthly net salary"},
	{"in hand salary", "monthly net salary"},
	{"in hand", "monthly net salary"},
	{"cost to company", "annual ctc"},
	{"pay slip", "salary breakdown"},
	{"payslip", "salary breakdown"},
	{"salary slip", "salary breakdown"},
	{"wfh", "work from home"},
	{"casual leaves", "casual leave"},
	{"sick leaves", "sick leave"},
	{"earned leaves", "earned leave"},
	{"privilege leave", "earned leave"},
	{"pl balance", "earned leave balance"},
	{"cl balance", "casual leave balance"},
	{"sl balance", "sick leave balance"},
	{"el balance", "earned leave balance"},
	{"cl ", "casual leave "},
	{"sl ", "sick leave "},
	{"el ", "earned leave "},
	{"doj", "joining date"},
	{"date of joining", "joining date"},
	{"emp id", "employee id"},
	{"emp code", "employee id"},
	{"reporting manager", "manager"},
	{"boss", "manager"},
}

// Normalize lowercases the utterance, collapses whitespace and rewrites
// known colloquial synonyms to canonical phrasing. Pure and deterministic.
func Normalize(utterance string) string {
	s := strings.ToLower(strings.TrimSpace(utterance))
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}

	// Pad so word-boundary rewrites like "cl " also match at the end.
	s = " " + s + " "
	for _, r := range synonymRewrites {
		from := r.from
		to := r.to
		if !strings.HasSuffix(from, " ") {
			from = " " + from + " "
			to = " " + to + " "
		} else {
			from = " " + from
			to = " " + to
		}
		s = strings.ReplaceAll(s, from, to)
	}

	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits a normalized utterance into scoring tokens, dropping
// punctuation and stopwords.
func Tokenize(normalized string) []string {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {},
	"i": {}, "my": {}, "me": {}, "we": {}, "our": {},
	"what": {}, "whats": {}, "how": {}, "when": {}, "who": {}, "which": {},
	"do": {}, "does": {}, "did": {}, "can": {}, "could": {}, "please": {},
	"tell": {}, "show": {}, "give": {}, "get": {},
	"of": {}, "for": {}, "to": {}, "in": {}, "on": {}, "about": {},
	"and": {}, "or": {}, "have": {}, "has": {}, "many": {}, "much": {},
}
