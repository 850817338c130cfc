// Package memory provides an in-memory Store used by tests and by the
// server when no database is configured in development.
package memory

import (
	"context"
	"sync"

	"tranzakt/internal/core"
	"tranzakt/internal/storage"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) ListByUser(_ context.Context, userID string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, 0)
	for _, tx := range s.items {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.items {
		if tx.ID == id {
			return tx, nil
		}
	}
	return core.Transaction{}, storage.ErrNotFound
}

func (s *Store) Create(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := core.Today()
	tx.ID = s.nextID
	tx.CreatedAt = today
	tx.UpdatedAt = today
	s.nextID++
	s.items = append(s.items, tx)
	return tx, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.items {
		if tx.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Count returns the number of stored transactions. Tests use it to
// assert that rejected requests performed no write.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Seed replaces the store contents, keeping the ids callers provided.
func (s *Store) Seed(items []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]core.Transaction(nil), items...)
	s.nextID = 1
	for _, tx := range items {
		if tx.ID >= s.nextID {
			s.nextID = tx.ID + 1
		}
	}
}

func (s *Store) Close() error { return nil }
