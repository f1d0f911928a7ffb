// Package core holds the domain types of the budget tracker: transactions,
// money amounts, time frames, and the budget aggregation.
//
// This file contains parsing and formatting of monetary amounts. Amounts are
// stored as signed cents so aggregation never touches floating point.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a signed currency amount in cents. Positive values are income,
// negative values are expenses.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to signed cents with half-up rounding
// on the third decimal place. It accepts an optional leading sign, an optional
// dollar prefix, and comma thousands separators.
//
// Examples:
//
//	ParseAmount("1500") -> 150000, nil
//	ParseAmount("-450.75") -> -45075, nil
//	ParseAmount("$1,500.50") -> 150050, nil
//	ParseAmount("12.346") -> 1235, nil (rounds up)
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	// Thousands separators carry no information once the sign is handled.
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		return Money{}, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return Money{}, ErrInvalidAmount
	}

	// Take the first two fractional digits, then half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return Money{Cents: cents}, nil
}

// Float64 returns the decimal value for display purposes. Use cents for
// calculations to avoid floating-point precision issues.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}

// IsPositive reports whether the amount is income.
func (m Money) IsPositive() bool { return m.Cents > 0 }

// IsNegative reports whether the amount is an expense.
func (m Money) IsNegative() bool { return m.Cents < 0 }

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Percent returns pct% of the amount in cents with half-up rounding.
func (m Money) Percent(pct int64) Money {
	v := m.Cents * pct
	if v >= 0 {
		return Money{Cents: (v + 50) / 100}
	}
	return Money{Cents: (v - 50) / 100}
}

// String formats the amount as a plain decimal, e.g. "-450.75".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	if cents%100 == 0 {
		return sign + strconv.FormatInt(cents/100, 10)
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + twoDigits(cents%100)
}

func twoDigits(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}

// MarshalJSON encodes the amount as a JSON number, e.g. -450.75.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a numeric string, matching
// the permissive `number|string` shape of the create payload.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
