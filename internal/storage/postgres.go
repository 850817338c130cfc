package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tranzakt/internal/core"
)

// transactionRow is the gorm model for the transactions table. Money
// and Date carry their own Valuer/Scanner so DECIMAL and DATE columns
// round-trip without float drift.
type transactionRow struct {
	ID        int64      `gorm:"primaryKey"`
	UserID    string     `gorm:"size:255;not null;index"`
	Title     string     `gorm:"size:255;not null"`
	Amount    core.Money `gorm:"type:decimal(10,2);not null"`
	Category  string     `gorm:"size:255;not null"`
	CreatedAt core.Date  `gorm:"type:date;not null"`
	UpdatedAt core.Date  `gorm:"type:date;not null"`
}

func (transactionRow) TableName() string { return "transactions" }

func (r transactionRow) toCore() core.Transaction {
	return core.Transaction{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Amount:    r.Amount,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// PostgresStore implements Store over a Postgres connection pool.
type PostgresStore struct {
	db *gorm.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to Postgres and runs the embedded schema
// migrations. The caller owns the returned store and must Close it.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	if err := RunMigrations(databaseURL); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// newStoreWithDB wires a store over an already-open gorm handle. Used
// by tests to run the same queries against an in-memory database.
func newStoreWithDB(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %w", err)
	}
	return sqlDB.Close()
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]core.Transaction, error) {
	var rows []transactionRow
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list transactions for user %s: %w", userID, err)
	}
	out := make([]core.Transaction, len(rows))
	for i, r := range rows {
		out[i] = r.toCore()
	}
	return out, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	var row transactionRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Transaction{}, ErrNotFound
		}
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return row.toCore(), nil
}

func (s *PostgresStore) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	today := core.Today()
	row := transactionRow{
		UserID:    tx.UserID,
		Title:     tx.Title,
		Amount:    tx.Amount,
		Category:  tx.Category,
		CreatedAt: today,
		UpdatedAt: today,
	}

	res := s.db.WithContext(ctx).Create(&row)
	if res.Error != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.Transaction{}, ErrNothingCreated
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", row.ID,
		"user_id", row.UserID,
		"amount_cents", row.Amount.Cents,
		"category", row.Category)

	return row.toCore(), nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&transactionRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete transaction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}
