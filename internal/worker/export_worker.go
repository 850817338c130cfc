// Package worker turns transaction events into report rows.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tranzakt/internal/amqp"
	"tranzakt/internal/core"
	"tranzakt/internal/sheets"
)

// ExportWorker appends every transaction event to a report exporter.
// Both created and deleted events become rows so the report doubles as
// an audit trail.
type ExportWorker struct {
	exporter sheets.Exporter
}

func NewExportWorker(exporter sheets.Exporter) *ExportWorker {
	return &ExportWorker{exporter: exporter}
}

// HandleEvent processes a single transaction event. Returning an error
// causes the message to be requeued by the consumer.
func (w *ExportWorker) HandleEvent(ctx context.Context, event *amqp.TransactionEvent) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"kind", event.Kind,
		"id", event.ID)

	row := sheets.Row{
		Kind:      event.Kind,
		ID:        event.ID,
		UserID:    event.UserID,
		Title:     event.Title,
		Amount:    core.Money{Cents: event.AmountCents},
		Category:  event.Category,
		Date:      event.Date,
		Timestamp: event.Timestamp,
	}

	ref, err := w.exporter.Append(ctx, row)
	if err != nil {
		return fmt.Errorf("append report row: %w", err)
	}

	slog.InfoContext(ctx, "Exported transaction event",
		"kind", event.Kind,
		"id", event.ID,
		"row_ref", ref)
	return nil
}
