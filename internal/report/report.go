// Package report renders aggregated statistics into the human-readable chat
// message. The output format is part of the product: the chat transport sends
// it verbatim, so it must stay deterministic.
package report

import (
	"fmt"
	"strings"

	"spendbot/internal/period"
	"spendbot/internal/services"
)

// NoDataMessage is the entire report when the period holds no records.
const NoDataMessage = "📊 За выбранный период трат не найдено."

// Format renders the statistics report. A zero overall total short-circuits
// to NoDataMessage with no header or breakdown. Row percentages are computed
// independently and rounded to one decimal, so their sum may drift from 100.0
// by rounding.
func Format(p period.Period, stats *services.Statistics) string {
	if stats.Totals.TotalAmount == 0 {
		return NoDataMessage
	}

	var b strings.Builder
	b.WriteString("📊 *Статистика за период:*\n")
	fmt.Fprintf(&b, "%s\n\n", capitalize(p.String()))

	fmt.Fprintf(&b, "💵 *Общая сумма:* %d руб.\n", stats.Totals.TotalAmount)
	fmt.Fprintf(&b, "🏆 *Топ категория:* %s\n\n", stats.Totals.TopCategory)

	b.WriteString("*📋 Детали по категориям:*\n")
	for i, row := range stats.Rows {
		percentage := float64(row.TotalAmount) / float64(stats.Totals.TotalAmount) * 100
		fmt.Fprintf(&b, "%d. %s: %d руб. (%d шт.) - %.1f%%\n",
			i+1, row.Category, row.TotalAmount, row.TransactionsCount, percentage)
	}
	return b.String()
}

// capitalize upper-cases the leading "с" of the period string for the header
// line ("С 01.01.2024 по 31.01.2024").
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	if r[0] == 'с' {
		r[0] = 'С'
	}
	return string(r)
}
