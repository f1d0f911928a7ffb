package memory

import (
	"context"
	"reflect"
	"testing"
	"time"

	"billfold/internal/core"
	"billfold/internal/store"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
}

func newTestStore() *Store {
	s := New()
	s.now = fixedClock
	return s
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 5; i++ {
		tx, err := s.Create(ctx, store.NewTransaction{
			Category: "Rent",
			Amount:   core.Money{Cents: -90000},
			Date:     fixedClock(),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if tx.ID <= lastID {
			t.Fatalf("id %d not strictly increasing after %d", tx.ID, lastID)
		}
		lastID = tx.ID
	}
}

func TestCreateRoundTrip(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	in := store.NewTransaction{
		Category: "Car Payment",
		Amount:   core.Money{Cents: -45075},
		Date:     time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	created, err := s.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := s.List(ctx, core.Monthly)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d transactions, want 1", len(listed))
	}
	if listed[0].ID != created.ID || listed[0].Category != in.Category || listed[0].Amount != in.Amount {
		t.Fatalf("round trip mismatch: %+v", listed[0])
	}
}

func TestCreateCoercesZeroDate(t *testing.T) {
	s := newTestStore()
	tx, err := s.Create(context.Background(), store.NewTransaction{
		Category: "Gift",
		Amount:   core.Money{Cents: 5000},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !tx.Date.Equal(fixedClock()) {
		t.Fatalf("zero date coerced to %s, want %s", tx.Date, fixedClock())
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC), // today
		time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),  // future
		time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),  // previous month
	}
	for _, d := range dates {
		if _, err := s.Create(ctx, store.NewTransaction{Category: "X", Amount: core.Money{Cents: -100}, Date: d}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	monthly, _ := s.List(ctx, core.Monthly)
	if len(monthly) != 2 {
		t.Fatalf("monthly listed %d, want 2", len(monthly))
	}
	if !monthly[0].Date.After(monthly[1].Date) {
		t.Fatalf("monthly not sorted newest first: %s before %s", monthly[0].Date, monthly[1].Date)
	}

	daily, _ := s.List(ctx, core.Daily)
	if len(daily) != 1 || daily[0].Date.Day() != 18 {
		t.Fatalf("daily mismatch: %+v", daily)
	}

	future, _ := s.List(ctx, core.Future)
	if len(future) != 1 || future[0].Date.Month() != time.July {
		t.Fatalf("future mismatch: %+v", future)
	}

	all, _ := s.List(ctx, core.TimeFrame("bogus"))
	if len(all) != 4 {
		t.Fatalf("unrecognized frame listed %d, want all 4", len(all))
	}
}

func TestListIdempotent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	for _, tx := range store.SeedTransactions(fixedClock()) {
		if _, err := s.Create(ctx, tx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	first, _ := s.List(ctx, core.Monthly)
	second, _ := s.List(ctx, core.Monthly)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two lists without intervening create differ")
	}
}

func TestListEmpty(t *testing.T) {
	s := newTestStore()
	out, err := s.List(context.Background(), core.Weekly)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("empty store listed %d transactions", len(out))
	}
}

func TestNewSeeded(t *testing.T) {
	s := NewSeeded()
	if s.Len() != 7 {
		t.Fatalf("seeded store holds %d transactions, want 7", s.Len())
	}
	all, _ := s.List(context.Background(), core.TimeFrame(""))
	var salary, future bool
	for _, tx := range all {
		if tx.Category == "Salary" && tx.Amount.Cents > 0 {
			salary = true
		}
		if tx.Category == "Travel" && core.Future.Contains(time.Now(), tx.Date) {
			future = true
		}
	}
	if !salary || !future {
		t.Fatalf("seed set missing salary credit or future expense: %+v", all)
	}
}
