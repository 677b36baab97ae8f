package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"spendbot/internal/period"
	"spendbot/internal/services"
)

func mustPeriod(t *testing.T, start, end string) period.Period {
	t.Helper()
	p, err := period.Parse(start, end)
	if err != nil {
		t.Fatalf("period.Parse: %v", err)
	}
	return p
}

func TestFormatNoData(t *testing.T) {
	p := mustPeriod(t, "01.01.2024", "31.01.2024")

	stats := &services.Statistics{
		Totals: services.StatsTotals{TotalAmount: 0, TopCategory: services.NoDataCategory},
	}
	if got := Format(p, stats); got != NoDataMessage {
		t.Errorf("Format = %q, want exactly %q", got, NoDataMessage)
	}

	// Zero total wins even if rows are (wrongly) populated.
	stats.Rows = []services.CategoryTotal{{Category: "food", TotalAmount: 0, TransactionsCount: 2}}
	if got := Format(p, stats); got != NoDataMessage {
		t.Errorf("Format with rows = %q, want exactly %q", got, NoDataMessage)
	}
}

func TestFormatReport(t *testing.T) {
	p := mustPeriod(t, "01.01.2024", "31.01.2024")
	stats := &services.Statistics{
		Rows: []services.CategoryTotal{
			{Category: "food", TotalAmount: 1500, TransactionsCount: 1},
			{Category: "transport", TotalAmount: 500, TransactionsCount: 2},
		},
		Totals: services.StatsTotals{TotalAmount: 2000, TopCategory: "food"},
	}

	got := Format(p, stats)

	for _, want := range []string{
		"С 01.01.2024 по 31.01.2024",
		"Общая сумма:* 2000 руб.",
		"Топ категория:* food",
		"1. food: 1500 руб. (1 шт.) - 75.0%",
		"2. transport: 500 руб. (2 шт.) - 25.0%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatSingleRowIsHundredPercent(t *testing.T) {
	p := mustPeriod(t, "15.06.2024", "15.06.2024")
	stats := &services.Statistics{
		Rows:   []services.CategoryTotal{{Category: "food", TotalAmount: 1500, TransactionsCount: 1}},
		Totals: services.StatsTotals{TotalAmount: 1500, TopCategory: "food"},
	}

	got := Format(p, stats)
	if !strings.Contains(got, "100.0%") {
		t.Errorf("single-category report must show 100.0%%:\n%s", got)
	}
}

var percentRe = regexp.MustCompile(`- (\d+(?:\.\d)?)%`)

func TestFormatPercentagesApproximatelySum(t *testing.T) {
	p := mustPeriod(t, "01.01.2024", "31.01.2024")
	stats := &services.Statistics{
		Rows: []services.CategoryTotal{
			{Category: "food", TotalAmount: 333, TransactionsCount: 3},
			{Category: "transport", TotalAmount: 333, TransactionsCount: 1},
			{Category: "other", TotalAmount: 334, TransactionsCount: 1},
		},
		Totals: services.StatsTotals{TotalAmount: 1000, TopCategory: "other"},
	}

	got := Format(p, stats)
	matches := percentRe.FindAllStringSubmatch(got, -1)
	if len(matches) != 3 {
		t.Fatalf("found %d percentage values, want 3:\n%s", len(matches), got)
	}

	var sum float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			t.Fatalf("parse %q: %v", m[1], err)
		}
		sum += v
	}
	// Each row may be off by at most half of the last rendered digit.
	tolerance := 0.05 * float64(len(matches))
	if math.Abs(sum-100.0) > tolerance {
		t.Errorf("percentages sum to %.2f, want 100±%.2f", sum, tolerance)
	}
}
