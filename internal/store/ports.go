// Package store defines the ports of the transaction store and the shared
// seed data. Concrete backends live in subpackages (memory) and in
// internal/storage (sqlite).
package store

import (
	"context"
	"time"

	"billfold/internal/core"
)

// NewTransaction is the input to Create. The id is assigned by the store.
type NewTransaction struct {
	Category string
	Amount   core.Money
	Date     time.Time
}

type (
	// TransactionWriter persists new transactions. A zero Date is coerced to
	// the current time; the store layer never rejects a create for
	// recoverable input, validation happens at the transport boundary.
	TransactionWriter interface {
		Create(ctx context.Context, tx NewTransaction) (core.Transaction, error)
	}

	// TransactionLister returns the transactions belonging to a time frame,
	// sorted by date descending. An unrecognized frame yields the full set.
	TransactionLister interface {
		List(ctx context.Context, frame core.TimeFrame) ([]core.Transaction, error)
	}
)
