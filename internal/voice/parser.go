// Package voice turns free-text utterances into best-effort transaction
// drafts. Parsing never fails: a missing field degrades to a default (zero
// amount, generic category, current date) so the caller can always present a
// guess for user confirmation before committing.
package voice

import (
	"regexp"
	"strings"
	"time"

	"billfold/internal/core"
)

// Vocabulary order is significant: the first hit wins, and the income list is
// always checked before the expense list.
var (
	incomeCategories = []string{
		"salary", "gift", "reimbursement", "inheritance", "bonus", "repayment",
	}
	expenseCategories = []string{
		"clothes", "fuel", "car payment", "shopping", "sports", "travel",
		"entertainment", "mortgage", "payment", "rent", "grocery",
	}
	receiptKeywords = []string{"receive", "got", "earned"}
)

var (
	amountPattern  = regexp.MustCompile(`\$?(\d+(?:,\d+)*(?:\.\d+)?)`)
	onDatePattern  = regexp.MustCompile(`(?i)on\s+(\w+\s+\d+(?:st|nd|rd|th)?(?:\s*,?\s*\d{4})?)`)
	ordinalPattern = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthDayPatterns matches "<month> <day>[ordinal][, year]" per month, scanned
// in calendar order.
var monthDayPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(monthNames))
	for i, m := range monthNames {
		out[i] = regexp.MustCompile(`(?i)` + m + `\s+(\d+)(?:st|nd|rd|th)?(?:\s*,?\s*(\d{4}))?`)
	}
	return out
}()

// Result is the parsed transaction draft.
type Result struct {
	Category string     `json:"category"`
	Amount   core.Money `json:"amount"`
	Date     time.Time  `json:"date"`
}

// Parse extracts {category, amount, date} from a voice command such as
// "Mortgage payment $1500 on May 5th". The second return value is false only
// when the command is empty; every other input yields a best-effort result.
func Parse(command string, now time.Time) (Result, bool) {
	if strings.TrimSpace(command) == "" {
		return Result{}, false
	}
	lower := strings.ToLower(command)

	category, isIncome := matchCategory(lower)

	amount := matchAmount(lower)
	if !isIncome {
		amount.Cents = -amount.Cents
	}

	return Result{
		Category: category,
		Amount:   amount,
		Date:     matchDate(lower, now),
	}, true
}

// matchCategory finds the first vocabulary hit. The second return value
// reports whether an income-vocabulary word occurs in the command, which is
// what decides the amount sign.
func matchCategory(lower string) (string, bool) {
	isIncome := false
	for _, cat := range incomeCategories {
		if strings.Contains(lower, cat) {
			isIncome = true
			break
		}
	}

	for _, cat := range incomeCategories {
		if strings.Contains(lower, cat) {
			return titleFirst(cat), isIncome
		}
	}
	for _, cat := range expenseCategories {
		if strings.Contains(lower, cat) {
			return titleFirst(cat), isIncome
		}
	}
	for _, kw := range receiptKeywords {
		if strings.Contains(lower, kw) {
			return "Income", isIncome
		}
	}
	return "Expense", isIncome
}

func matchAmount(lower string) core.Money {
	m := amountPattern.FindStringSubmatch(lower)
	if m == nil {
		return core.Money{}
	}
	amount, err := core.ParseAmount(m[1])
	if err != nil {
		return core.Money{}
	}
	return amount
}

func matchDate(lower string, now time.Time) time.Time {
	// "on <month> <day>[ordinal][, year]" wins when it parses.
	if m := onDatePattern.FindStringSubmatch(lower); m != nil {
		clean := strings.TrimSpace(ordinalPattern.ReplaceAllString(m[1], "$1"))
		if d, ok := parseMonthDay(clean, now); ok {
			return d
		}
	}

	// Otherwise scan for any month name followed by a day number.
	for i, p := range monthDayPatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		day := atoiDefault(m[1], 1)
		year := now.Year()
		if m[2] != "" {
			year = atoiDefault(m[2], year)
		}
		return time.Date(year, time.Month(i+1), day, 0, 0, 0, 0, now.Location())
	}

	return now
}

// parseMonthDay parses "may 5" or "may 5, 2026" style strings. A missing year
// resolves to now's year.
func parseMonthDay(s string, now time.Time) (time.Time, bool) {
	for _, layout := range []string{"January 2, 2006", "January 2 2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location()), true
		}
	}
	if d, err := time.Parse("January 2", s); err == nil {
		return time.Date(now.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func atoiDefault(s string, def int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	if len(s) == 0 {
		return def
	}
	return n
}
