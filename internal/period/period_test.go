package period

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := Parse("01.01.2024", "31.01.2024")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if p.Start.Day() != 1 || p.Start.Month() != time.January || p.Start.Year() != 2024 {
			t.Errorf("unexpected start: %v", p.Start)
		}
		if p.End.Day() != 31 {
			t.Errorf("unexpected end: %v", p.End)
		}
	})

	t.Run("single day", func(t *testing.T) {
		if _, err := Parse("15.06.2024", "15.06.2024"); err != nil {
			t.Errorf("same start and end must be valid: %v", err)
		}
	})

	t.Run("reversed range", func(t *testing.T) {
		if _, err := Parse("31.01.2024", "01.01.2024"); err == nil {
			t.Error("expected error for start after end")
		}
	})

	t.Run("bad formats", func(t *testing.T) {
		for _, pair := range [][2]string{
			{"2024-01-01", "31.01.2024"},
			{"01.01.2024", "January 31"},
			{"32.01.2024", "31.01.2024"},
			{"", "31.01.2024"},
		} {
			if _, err := Parse(pair[0], pair[1]); err == nil {
				t.Errorf("Parse(%q, %q): expected error", pair[0], pair[1])
			}
		}
	})
}

func TestSQLBounds(t *testing.T) {
	p, err := Parse("05.03.2024", "07.03.2024")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.StartSQL() != "2024-03-05" {
		t.Errorf("StartSQL = %q", p.StartSQL())
	}
	if p.EndSQL() != "2024-03-07" {
		t.Errorf("EndSQL = %q", p.EndSQL())
	}
}

func TestString(t *testing.T) {
	p, _ := Parse("01.01.2024", "31.01.2024")
	want := "с 01.01.2024 по 31.01.2024"
	if p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
}

func TestDay(t *testing.T) {
	d := Day(time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC))
	if d.StartSQL() != "2024-06-15" || d.EndSQL() != "2024-06-15" {
		t.Errorf("Day bounds = %q..%q", d.StartSQL(), d.EndSQL())
	}
}

func TestWeek(t *testing.T) {
	w := Week(time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC))
	if w.StartSQL() != "2024-06-08" || w.EndSQL() != "2024-06-15" {
		t.Errorf("Week bounds = %q..%q", w.StartSQL(), w.EndSQL())
	}
}

func TestMonth(t *testing.T) {
	t.Run("mid year", func(t *testing.T) {
		m := Month(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
		if m.StartSQL() != "2024-06-01" || m.EndSQL() != "2024-06-30" {
			t.Errorf("Month bounds = %q..%q", m.StartSQL(), m.EndSQL())
		}
	})

	t.Run("december rolls over the year", func(t *testing.T) {
		m := Month(time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC))
		if m.StartSQL() != "2024-12-01" || m.EndSQL() != "2024-12-31" {
			t.Errorf("Month bounds = %q..%q", m.StartSQL(), m.EndSQL())
		}
	})

	t.Run("february leap year", func(t *testing.T) {
		m := Month(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
		if m.EndSQL() != "2024-02-29" {
			t.Errorf("EndSQL = %q", m.EndSQL())
		}
	})
}
