// Package storage provides the transaction store port and its Postgres
// implementation. The store is injected into callers; no package keeps
// a process-global handle.
package storage

import (
	"context"
	"errors"

	"tranzakt/internal/core"
)

var (
	// ErrNotFound is returned when a delete target does not exist.
	ErrNotFound = errors.New("transaction not found")

	// ErrNothingCreated is returned when an insert reports zero rows
	// affected.
	ErrNothingCreated = errors.New("transaction creation failed")
)

// Store is the port the HTTP layer depends on. Implementations must be
// safe for concurrent use.
type Store interface {
	// ListByUser returns all transactions owned by userID. Order is
	// unspecified; callers sort if they need recency order.
	ListByUser(ctx context.Context, userID string) ([]core.Transaction, error)

	// GetByID returns the transaction with the given id. Returns
	// ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id int64) (core.Transaction, error)

	// Create inserts a transaction with a store-assigned id and
	// current-date timestamps, returning the created record.
	Create(ctx context.Context, tx core.Transaction) (core.Transaction, error)

	// Delete removes the transaction with the given id. Returns
	// ErrNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error

	Close() error
}
