package core

import "strings"

// bondPaymentPct is the automatic deduction applied to salary income.
const bondPaymentPct = 15

// salaryCategory is matched case-insensitively against transaction categories
// when computing the bond payment base.
const salaryCategory = "salary"

// ComputeBudget reduces the monthly transaction set to the budget summary.
// It is a pure function: no side effects and no dependence on iteration order.
//
// The bond payment is 15% of all positive salary-category amounts and is
// always reported. When enabled it is absorbed into the reported expenses and
// subtracted from the remaining balance, so income - expenses == remaining
// holds for display. Zero-amount transactions contribute to neither bucket.
func ComputeBudget(monthly []Transaction, bondPaymentEnabled bool) Budget {
	var income, expenses, salary int64

	for _, t := range monthly {
		switch {
		case t.Amount.IsPositive():
			income += t.Amount.Cents
			if strings.EqualFold(t.Category, salaryCategory) {
				salary += t.Amount.Cents
			}
		case t.Amount.IsNegative():
			expenses += -t.Amount.Cents
		}
	}

	bond := Money{Cents: salary}.Percent(bondPaymentPct)

	remaining := income - expenses
	if bondPaymentEnabled && bond.Cents > 0 {
		remaining -= bond.Cents
	}
	if bondPaymentEnabled {
		expenses += bond.Cents
	}

	return Budget{
		Income:      Money{Cents: income},
		Expenses:    Money{Cents: expenses},
		Remaining:   Money{Cents: remaining},
		BondPayment: bond,
	}
}
