package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)

	good := Transaction{Category: "Mortgage", Amount: Money{Cents: -150000}, Date: date}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Category: "", Amount: Money{Cents: 1}, Date: date},
		{Category: "   ", Amount: Money{Cents: 1}, Date: date},
		{Category: strings.Repeat("x", 201), Amount: Money{Cents: 1}, Date: date},
		{Category: "Rent", Amount: Money{Cents: 1}}, // zero date
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTransactionMarshalJSON(t *testing.T) {
	tx := Transaction{
		ID:       7,
		Category: "Car Payment",
		Amount:   Money{Cents: -45075},
		Date:     time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	for _, want := range []string{`"id":7`, `"category":"Car Payment"`, `"amount":-450.75`, `"date":"2025-06-10T00:00:00Z"`} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled transaction %s missing %s", got, want)
		}
	}
}
