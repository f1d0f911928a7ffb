// Package memory implements the transaction store as a process-local,
// mutex-guarded collection. State is advisory and lost on restart; the store
// re-seeds the demonstration set at construction.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"billfold/internal/core"
	"billfold/internal/store"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
	now    func() time.Time
}

// New returns an empty store. The clock defaults to time.Now and is only
// swapped in tests.
func New() *Store {
	return &Store{nextID: 1, now: time.Now}
}

// NewSeeded returns a store pre-populated with the demonstration set anchored
// to the current month.
func NewSeeded() *Store {
	s := New()
	for _, tx := range store.SeedTransactions(s.now()) {
		_, _ = s.Create(context.Background(), tx)
	}
	return s
}

// Create assigns the next sequential id and stores the transaction. A zero
// date is coerced to now; ids are never reused.
func (s *Store) Create(_ context.Context, tx store.NewTransaction) (core.Transaction, error) {
	date := tx.Date
	if date.IsZero() {
		date = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := core.Transaction{
		ID:       s.nextID,
		Category: tx.Category,
		Amount:   tx.Amount,
		Date:     date,
	}
	s.nextID++
	s.items = append(s.items, created)
	return created, nil
}

// List returns the transactions belonging to frame, newest first. An
// unrecognized frame returns everything. The result is always a copy.
func (s *Store) List(_ context.Context, frame core.TimeFrame) ([]core.Transaction, error) {
	now := s.now()

	s.mu.Lock()
	out := make([]core.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		if frame.Contains(now, tx.Date) {
			out = append(out, tx)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Len reports the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
