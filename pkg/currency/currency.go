package currency

import (
	"fmt"
	"strings"
)

// westernSymbols maps codes that render with a symbol and thousands grouping.
var westernSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Format renders an amount in the organization's currency. INR uses the
// Indian digit grouping (₹6,00,000.00); USD/EUR/GBP use their symbol with
// western grouping; any other code falls back to "CODE 1,234.56".
func Format(code string, amount float64) string {
	upper := strings.ToUpper(code)
	switch {
	case upper == "INR" || upper == "":
		return withSign("₹", formatIndianGrouping(amount))
	default:
		if symbol, ok := westernSymbols[upper]; ok {
			return withSign(symbol, formatWesternGrouping(amount))
		}
		return upper + " " + formatWesternGrouping(amount)
	}
}

// withSign keeps the minus ahead of the currency symbol.
func withSign(symbol, formatted string) string {
	if strings.HasPrefix(formatted, "-") {
		return "-" + symbol + formatted[1:]
	}
	return symbol + formatted
}

// formatIndianGrouping groups the last three digits, then pairs:
// 600000 -> 6,00,000.00
func formatIndianGrouping(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		var headGroups []string
		for len(head) > 2 {
			headGroups = append([]string{head[len(head)-2:]}, headGroups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			headGroups = append([]string{head}, headGroups...)
		}
		grouped = strings.Join(headGroups, ",") + "," + tail
	}

	out := grouped + "." + decPart
	if negative {
		out = "-" + out
	}
	return out
}

func formatWesternGrouping(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",") + "." + decPart
	if negative {
		out = "-" + out
	}
	return out
}
