package core

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type (
	// Transaction is a single income or expense entry. The sign of Amount
	// carries the direction: positive amounts are income, negative amounts
	// are expenses. Categories are stored verbatim; callers derive the sign
	// from the category before creating the transaction.
	Transaction struct {
		ID       int64
		Category string
		Amount   Money
		Date     time.Time
	}

	// Budget is the derived monthly summary. It is never persisted; it is
	// recomputed from the monthly transaction set on every query.
	Budget struct {
		Income      Money `json:"income"`
		Expenses    Money `json:"expenses"`
		Remaining   Money `json:"remaining"`
		BondPayment Money `json:"bondPayment"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyCategory = errors.New("empty category")
)

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Category)) == 0 {
		return ErrEmptyCategory
	}
	if len(t.Category) > 200 {
		return errors.New("category too long (max 200 characters)")
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// MarshalJSON renders the wire shape consumed by the UI: the amount as a
// decimal number and the date in RFC 3339.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       int64  `json:"id"`
		Category string `json:"category"`
		Amount   Money  `json:"amount"`
		Date     string `json:"date"`
	}{
		ID:       t.ID,
		Category: t.Category,
		Amount:   t.Amount,
		Date:     t.Date.Format(time.RFC3339),
	})
}
