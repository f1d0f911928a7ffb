package voice

import (
	"testing"
	"time"

	"billfold/internal/core"
)

var now = time.Date(2025, time.June, 18, 10, 0, 0, 0, time.UTC)

func TestParseExpenseWithDate(t *testing.T) {
	got, ok := Parse("Mortgage payment $1500 on May 5th", now)
	if !ok {
		t.Fatalf("expected a result")
	}
	if got.Category != "Mortgage" {
		t.Errorf("category = %q, want Mortgage", got.Category)
	}
	if got.Amount.Cents != -150000 {
		t.Errorf("amount = %s, want -1500", got.Amount)
	}
	want := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
	if !got.Date.Equal(want) {
		t.Errorf("date = %s, want %s", got.Date, want)
	}
}

func TestParseIncome(t *testing.T) {
	got, ok := Parse("received $200 gift", now)
	if !ok {
		t.Fatalf("expected a result")
	}
	if got.Category != "Gift" {
		t.Errorf("category = %q, want Gift", got.Category)
	}
	if got.Amount.Cents != 20000 {
		t.Errorf("amount = %s, want +200", got.Amount)
	}
	if !got.Date.Equal(now) {
		t.Errorf("date = %s, want now", got.Date)
	}
}

func TestParseCategories(t *testing.T) {
	cases := []struct {
		command  string
		category string
		cents    int64
	}{
		// Income vocabulary is checked before the expense vocabulary.
		{"salary payment $5800", "Salary", 580000},
		// "car payment" is matched before the bare "payment".
		{"car payment of $450.75", "Car payment", -45075},
		{"spent 120 shopping", "Shopping", -12000},
		// Receipt keyword without a vocabulary hit defaults to Income, but
		// the sign still follows the income vocabulary only.
		{"got 50 from a friend", "Income", -5000},
		{"something unrecognizable", "Expense", 0},
	}
	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			got, ok := Parse(tc.command, now)
			if !ok {
				t.Fatalf("expected a result")
			}
			if got.Category != tc.category {
				t.Errorf("category = %q, want %q", got.Category, tc.category)
			}
			if got.Amount.Cents != tc.cents {
				t.Errorf("amount = %s, want %d cents", got.Amount, tc.cents)
			}
		})
	}
}

func TestParseDates(t *testing.T) {
	cases := []struct {
		command string
		want    time.Time
	}{
		{"rent $900 on May 5th", time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)},
		{"rent $900 on May 5, 2026", time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC)},
		// No "on" pattern: month-name scan picks the date up anyway.
		{"travel 800 december 24", time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC)},
		{"bonus 300 january 2 2026", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)},
		// Nothing parseable: defaults to now.
		{"fuel 60", now},
	}
	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			got, ok := Parse(tc.command, now)
			if !ok {
				t.Fatalf("expected a result")
			}
			if !got.Date.Equal(tc.want) {
				t.Errorf("date = %s, want %s", got.Date, tc.want)
			}
		})
	}
}

func TestParseAmountVariants(t *testing.T) {
	cases := []struct {
		command string
		cents   int64
	}{
		{"grocery $1,250.50", -125050},
		{"grocery 45", -4500},
		{"grocery run", 0}, // no amount at all
	}
	for _, tc := range cases {
		got, ok := Parse(tc.command, now)
		if !ok {
			t.Fatalf("expected a result for %q", tc.command)
		}
		if got.Amount.Cents != tc.cents {
			t.Errorf("Parse(%q) amount = %s, want %d cents", tc.command, got.Amount, tc.cents)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if _, ok := Parse("", now); ok {
		t.Fatalf("empty command should yield no result")
	}
	if _, ok := Parse("   ", now); ok {
		t.Fatalf("blank command should yield no result")
	}
}

func TestParseNeverNegativeZero(t *testing.T) {
	got, _ := Parse("unknown thing", now)
	if got.Amount != (core.Money{}) {
		t.Fatalf("amount = %s, want zero", got.Amount)
	}
}
