package amqp

import (
	"testing"
	"time"

	"tranzakt/internal/core"
)

func TestNewCreatedEvent(t *testing.T) {
	tx := core.Transaction{
		ID:        42,
		UserID:    "user_1",
		Title:     "Groceries",
		Amount:    core.Money{Cents: -4250},
		Category:  "Food",
		CreatedAt: core.NewDate(2024, 1, 5),
	}

	event := NewCreatedEvent(tx)

	if event.Kind != EventCreated {
		t.Errorf("Kind = %q, want %q", event.Kind, EventCreated)
	}
	if event.ID != 42 || event.UserID != "user_1" {
		t.Errorf("identity fields: %+v", event)
	}
	if event.AmountCents != -4250 {
		t.Errorf("AmountCents = %d, want -4250", event.AmountCents)
	}
	if event.Date != "2024-01-05" {
		t.Errorf("Date = %q, want 2024-01-05", event.Date)
	}
	if event.Timestamp.IsZero() || time.Since(event.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestTransactionEvent_JSON(t *testing.T) {
	event := &TransactionEvent{
		Kind:        EventDeleted,
		ID:          7,
		UserID:      "user_2",
		Title:       "Rent",
		AmountCents: -90000,
		Category:    "Housing",
		Date:        "2024-02-01",
		Timestamp:   time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := event.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TransactionEventFromJSON(data)
	if err != nil {
		t.Fatalf("TransactionEventFromJSON() error = %v", err)
	}

	if parsed.Kind != event.Kind || parsed.ID != event.ID {
		t.Errorf("parsed %+v, want %+v", parsed, event)
	}
	if parsed.AmountCents != event.AmountCents || parsed.Date != event.Date {
		t.Errorf("parsed %+v, want %+v", parsed, event)
	}
	if !parsed.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", parsed.Timestamp, event.Timestamp)
	}
}

func TestTransactionEvent_InvalidJSON(t *testing.T) {
	if _, err := TransactionEventFromJSON([]byte(`{"id": "not_a_number"}`)); err == nil {
		t.Error("TransactionEventFromJSON() should fail with invalid JSON")
	}
}
