package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	// Truncates to the UTC calendar date regardless of source zone.
	loc := time.FixedZone("UTC+9", 9*3600)
	instant := time.Date(2024, 1, 6, 2, 30, 0, 0, loc) // 2024-01-05 17:30 UTC
	d := DateOf(instant)
	if d.String() != "2024-01-05" {
		t.Fatalf("DateOf = %s, want 2024-01-05", d)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 1, 5)
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-01-05"` {
		t.Fatalf("marshal: got %s", out)
	}
	var back Date
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.SameDay(d) {
		t.Fatalf("round trip mismatch: %s vs %s", back, d)
	}
	if err := json.Unmarshal([]byte(`"05/01/2024"`), &back); err == nil {
		t.Fatal("unmarshal should reject non-ISO dates")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2024-01-05" {
		t.Fatalf("scan time: got %s", d)
	}
	if err := d.Scan("2024-02-29"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("scan int: expected error")
	}
}

func TestTransactionIsIncome(t *testing.T) {
	if !(Transaction{Amount: Money{Cents: 1}}).IsIncome() {
		t.Fatal("positive amount must be income")
	}
	if (Transaction{Amount: Money{Cents: -1}}).IsIncome() {
		t.Fatal("negative amount must not be income")
	}
	if (Transaction{Amount: Money{Cents: 0}}).IsIncome() {
		t.Fatal("zero amount must not be income")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{UserID: "user_1", Title: "Coffee", Amount: Money{Cents: -350}, Category: "Food"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	// zero amounts are allowed
	zero := good
	zero.Amount = Money{}
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}

	bads := []Transaction{
		{UserID: "", Title: "a", Category: "c"},
		{UserID: "u", Title: "  ", Category: "c"},
		{UserID: "u", Title: "a", Category: ""},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Errorf("case %d expected error", i)
		}
	}
}
