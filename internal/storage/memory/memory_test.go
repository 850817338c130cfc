package memory

import (
	"context"
	"errors"
	"testing"

	"tranzakt/internal/core"
	"tranzakt/internal/storage"
)

func TestCreateListDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Create(ctx, core.Transaction{
		UserID: "user_1", Title: "Coffee", Amount: core.Money{Cents: -350}, Category: "Food",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("first id should be 1, got %d", created.ID)
	}
	if !created.CreatedAt.SameDay(core.Today()) {
		t.Fatalf("created_at should default to today, got %s", created.CreatedAt)
	}

	other, _ := s.Create(ctx, core.Transaction{
		UserID: "user_2", Title: "Rent", Amount: core.Money{Cents: -90000}, Category: "Housing",
	})
	if other.ID != 2 {
		t.Fatalf("ids must increment, got %d", other.ID)
	}

	got, err := s.ListByUser(ctx, "user_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Coffee" {
		t.Fatalf("list for user_1: %+v", got)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 remaining transaction, got %d", s.Count())
	}
}

func TestGetByID(t *testing.T) {
	s := New()
	s.Seed([]core.Transaction{
		{ID: 3, UserID: "user_1", Title: "Coffee", Amount: core.Money{Cents: -350}, Category: "Food"},
	})

	got, err := s.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Coffee" || got.Amount.Cents != -350 {
		t.Fatalf("get round trip: %+v", got)
	}

	if _, err := s.GetByID(context.Background(), 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := New()
	if err := s.Delete(context.Background(), 42); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Count() != 0 {
		t.Fatal("failed delete must leave the store unchanged")
	}
}

func TestSeed(t *testing.T) {
	s := New()
	s.Seed([]core.Transaction{
		{ID: 7, UserID: "user_1", Title: "Salary", Amount: core.Money{Cents: 100000}, Category: "Income"},
	})

	created, err := s.Create(context.Background(), core.Transaction{
		UserID: "user_1", Title: "Coffee", Amount: core.Money{Cents: -350}, Category: "Food",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("seeded ids must not be reused, got %d", created.ID)
	}
}
