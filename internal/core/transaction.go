package core

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyUserID   = errors.New("empty user id")
	ErrEmptyTitle    = errors.New("empty title")
	ErrEmptyCategory = errors.New("empty category")
)

// Date is a day-granularity calendar date in UTC, matching the store's
// DATE columns. All period comparisons use its calendar fields, never
// elapsed durations.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its UTC calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, int(m), d)
}

// Today returns the current UTC calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// SameDay reports whether two dates fall on the same calendar date.
func (d Date) SameDay(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer for DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		// Drivers return DATE columns in a few textual shapes.
		for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05-07:00", "2006-01-02 15:04:05"} {
			if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
				*d = DateOf(t)
				return nil
			}
		}
		return fmt.Errorf("scan date: unparsable value %q", v)
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// Transaction is one financial record owned by a user. The sign of
// Amount is the canonical income/expense classification: positive is
// income, everything else is expense.
type Transaction struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Amount    Money  `json:"amount"`
	Category  string `json:"category"`
	CreatedAt Date   `json:"created_at"`
	UpdatedAt Date   `json:"updated_at"`
}

// IsIncome reports whether the transaction is classified as income.
func (t Transaction) IsIncome() bool {
	return t.Amount.Cents > 0
}

// Validate checks the caller-supplied fields of a transaction to be
// created. A zero amount is allowed; an absent amount is the HTTP
// layer's concern.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > 255 {
		return errors.New("title too long (max 255 characters)")
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if len(t.Category) > 255 {
		return errors.New("category too long (max 255 characters)")
	}
	return nil
}
