package store

import (
	"time"

	"billfold/internal/core"
)

// SeedTransactions returns the fixed demonstration set, anchored to the month
// containing now: one salary credit, several expense debits, one reimbursement
// credit, and one future-dated expense in the following month. Stores load it
// at startup so a fresh process has something to show.
func SeedTransactions(now time.Time) []NewTransaction {
	monthDay := func(day int) time.Time {
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	}
	return []NewTransaction{
		{Category: "Salary", Amount: core.Money{Cents: 580000}, Date: monthDay(1)},
		{Category: "Mortgage", Amount: core.Money{Cents: -150000}, Date: monthDay(5)},
		{Category: "Car Payment", Amount: core.Money{Cents: -45075}, Date: monthDay(10)},
		{Category: "Shopping", Amount: core.Money{Cents: -12000}, Date: monthDay(12)},
		{Category: "Clothes", Amount: core.Money{Cents: -20000}, Date: monthDay(15)},
		{Category: "Reimbursement", Amount: core.Money{Cents: 14350}, Date: monthDay(18)},
		// Future-dated expense: the 5th of next month. AddDate handles the
		// December rollover.
		{Category: "Travel", Amount: core.Money{Cents: -80000}, Date: monthDay(5).AddDate(0, 1, 0)},
	}
}
