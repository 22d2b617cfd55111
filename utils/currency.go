package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyBRL formats an amount for receipts, e.g. 1234.5 -> "R$ 1.234,50".
func FormatCurrencyBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	// Thousand separators, right to left
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, strings.Join(groups, "."), decimalPart)
}
