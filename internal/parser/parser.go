// Package parser turns a free-text chat entry like "мясо 1500" into a
// description and an amount.
package parser

import (
	"strconv"
	"strings"
)

// EmptyDescription is stored as the record title when the entry contained no
// textual tokens at all (e.g. the message was just "1500").
const EmptyDescription = "Пустое значение"

// Parse splits raw text on whitespace and partitions the tokens into numeric
// and textual ones, preserving order. Every token made up entirely of decimal
// digits contributes to the amount; a message like "мясо 500 1000" therefore
// yields amount 1500. Tokens with a decimal point, sign or currency symbol are
// treated as text. Multi-numeric summing is intentional: it keeps parity with
// how entries have always been recorded (see DESIGN.md).
func Parse(raw string) (description string, amount int64) {
	var words []string

	for _, token := range strings.Fields(raw) {
		if isDigits(token) {
			n, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				// Longer than an int64; keep it as text rather than lose it.
				words = append(words, token)
				continue
			}
			amount += n
			continue
		}
		words = append(words, token)
	}

	if len(words) == 0 {
		return EmptyDescription, amount
	}
	return strings.Join(words, " "), amount
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
