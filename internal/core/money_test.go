package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"100", 10000, false},
		{"0", 0, false},
		{"-40", -4000, false},
		{"-0.40", -40, false},
		{"+5.5", 550, false},
		{"12.345", 1234, false}, // rounds down
		{"12.346", 1235, false}, // rounds up
		{"12.", 1200, false},
		{"0.", 0, false},
		{".5", 50, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"12..", 0, true},
		{"-", 0, true},
		{".", 0, true},
		{"-.", 0, true},
		{"92233720368547758.99", 0, true}, // would wrap past int64 cents
		{"99999999999999999999", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDecimalToCents(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecimalToCents(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{-4000, "-40.00"},
		{-40, "-0.40"},
		{0, "0.00"},
		{5, "0.05"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	// Numbers and strings both parse; strings round-trip.
	var m Money
	if err := json.Unmarshal([]byte(`"-40.00"`), &m); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if m.Cents != -4000 {
		t.Fatalf("unmarshal string: got %d cents", m.Cents)
	}

	if err := json.Unmarshal([]byte(`100.5`), &m); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if m.Cents != 10050 {
		t.Fatalf("unmarshal number: got %d cents", m.Cents)
	}

	out, err := json.Marshal(Money{Cents: -4000})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"-40.00"` {
		t.Fatalf("marshal: got %s", out)
	}

	if err := json.Unmarshal([]byte(`null`), &m); err == nil {
		t.Fatal("unmarshal null: expected error")
	}
}

func TestMoneyScan(t *testing.T) {
	var m Money
	if err := m.Scan("12.34"); err != nil || m.Cents != 1234 {
		t.Fatalf("scan string: %d, %v", m.Cents, err)
	}
	if err := m.Scan([]byte("-0.40")); err != nil || m.Cents != -40 {
		t.Fatalf("scan bytes: %d, %v", m.Cents, err)
	}
	if err := m.Scan(60.0); err != nil || m.Cents != 6000 {
		t.Fatalf("scan float: %d, %v", m.Cents, err)
	}
	if err := m.Scan(struct{}{}); err == nil {
		t.Fatal("scan struct: expected error")
	}
}
