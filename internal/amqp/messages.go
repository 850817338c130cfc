package amqp

import (
	"encoding/json"
	"time"

	"tranzakt/internal/core"
)

const (
	EventCreated = "transaction.created"
	EventDeleted = "transaction.deleted"
)

// TransactionEvent carries everything downstream consumers need so
// they never have to call back into the store.
type TransactionEvent struct {
	Kind        string    `json:"kind"`
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Timestamp   time.Time `json:"timestamp"`
}

// NewCreatedEvent builds the event published after a successful insert.
func NewCreatedEvent(tx core.Transaction) *TransactionEvent {
	return newEvent(EventCreated, tx)
}

// NewDeletedEvent builds the event published after a successful delete.
func NewDeletedEvent(tx core.Transaction) *TransactionEvent {
	return newEvent(EventDeleted, tx)
}

func newEvent(kind string, tx core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Kind:        kind,
		ID:          tx.ID,
		UserID:      tx.UserID,
		Title:       tx.Title,
		AmountCents: tx.Amount.Cents,
		Category:    tx.Category,
		Date:        tx.CreatedAt.String(),
		Timestamp:   time.Now().UTC(),
	}
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
