package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tranzakt/internal/core"
)

// newTestStore runs the store's queries against an in-memory SQLite
// database through the same gorm model. The Postgres migrations are
// dialect-specific, so the schema comes from AutoMigrate here.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&transactionRow{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	store := newStoreWithDB(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAssignsIDAndDates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, core.Transaction{
		UserID:   "user_1",
		Title:    "Salary",
		Amount:   core.Money{Cents: 250000},
		Category: "Income",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("create must assign an id")
	}
	today := core.Today()
	if !created.CreatedAt.SameDay(today) || !created.UpdatedAt.SameDay(today) {
		t.Fatalf("timestamps should default to today, got %s / %s", created.CreatedAt, created.UpdatedAt)
	}
	if created.Amount.Cents != 250000 {
		t.Fatalf("amount round trip: got %d cents", created.Amount.Cents)
	}
}

func TestListByUserScopesToOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, tx := range []core.Transaction{
		{UserID: "user_1", Title: "Salary", Amount: core.Money{Cents: 250000}, Category: "Income"},
		{UserID: "user_1", Title: "Groceries", Amount: core.Money{Cents: -4250}, Category: "Food"},
		{UserID: "user_2", Title: "Rent", Amount: core.Money{Cents: -90000}, Category: "Housing"},
	} {
		if _, err := store.Create(ctx, tx); err != nil {
			t.Fatalf("create %s: %v", tx.Title, err)
		}
	}

	got, err := store.ListByUser(ctx, "user_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions for user_1, got %d", len(got))
	}
	for _, tx := range got {
		if tx.UserID != "user_1" {
			t.Fatalf("leaked transaction for %s", tx.UserID)
		}
	}

	// Decimal amounts must survive the round trip exactly.
	summary := core.ComputeSummary(got)
	if summary.Balance.Cents != 245750 {
		t.Fatalf("balance after round trip: %s", summary.Balance)
	}

	empty, err := store.ListByUser(ctx, "user_3")
	if err != nil {
		t.Fatalf("list unknown user: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unknown user should have no transactions, got %d", len(empty))
	}
}

func TestGetByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, core.Transaction{
		UserID: "user_1", Title: "Coffee", Amount: core.Money{Cents: -350}, Category: "Food",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Coffee" || got.Amount.Cents != -350 || got.UserID != "user_1" {
		t.Fatalf("get round trip: %+v", got)
	}

	if _, err := store.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing row, got %v", err)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, core.Transaction{
		UserID: "user_1", Title: "Coffee", Amount: core.Money{Cents: -350}, Category: "Food",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := store.ListByUser(ctx, "user_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("row still present after delete: %+v", got)
	}
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
