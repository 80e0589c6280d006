package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/pkg/llm"
)

const formatterSystemPrompt = `You are an HR assistant. Summarize the query result below as a direct answer to the employee's question, in at most two sentences. Use only the numbers and values given; do not invent anything.`

// FormatRows phrases a result set as prose. The model call is best-effort:
// when it fails the deterministic formatter answers from the first row, so
// a validated, executed query always yields something readable.
func FormatRows(ctx context.Context, provider llm.Provider, question string, rows []map[string]interface{}) string {
	if len(rows) == 0 {
		return constant.NoResultsAnswer
	}

	if provider != nil {
		payload, err := json.Marshal(rows)
		if err == nil {
			user := fmt.Sprintf("Question: %s\nResult rows: %s", question, string(payload))
			answer, err := provider.Complete(ctx, formatterSystemPrompt, user, llm.WithTemperature(0.2))
			if err == nil && strings.TrimSpace(answer) != "" {
				return strings.TrimSpace(answer)
			}
		}
	}

	return formatFirstRow(rows[0])
}

// salaryColumns get a dedicated phrase because pay questions are by far
// the most common reason the synthesizer runs.
var salaryColumns = []string{"base_salary", "monthly_net", "monthly_gross", "annual_ctc", "net_salary", "gross_salary", "salary"}

func formatFirstRow(row map[string]interface{}) string {
	for _, col := range salaryColumns {
		if v, found := row[col]; found {
			return fmt.Sprintf("The %s on record is %v.", strings.ReplaceAll(col, "_", " "), v)
		}
	}

	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", strings.ReplaceAll(k, "_", " "), row[k]))
	}
	return "Here is what I found: " + strings.Join(parts, ", ") + "."
}
