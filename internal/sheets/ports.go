package sheets

import (
	"context"
	"time"

	"tranzakt/internal/core"
)

// Row is one line of the transaction report.
type Row struct {
	Kind      string
	ID        int64
	UserID    string
	Title     string
	Amount    core.Money
	Category  string
	Date      string
	Timestamp time.Time
}

// Exporter appends report rows to an external destination.
type Exporter interface {
	Append(ctx context.Context, r Row) (rowRef string, err error)
}
