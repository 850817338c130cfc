package core

import (
	"errors"
	"sort"
	"time"
)

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"

	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = "income"
	TypeExpense TypeFilter = "expense"
)

type (
	// Period is a calendar time-window predicate applied before
	// aggregation.
	Period string

	// TypeFilter selects income, expense, or all transactions.
	TypeFilter string

	// Summary holds the net balance and the income/expense components
	// for a set of transactions. Balance == Income + Expense always
	// holds under the sign convention.
	Summary struct {
		Balance Money `json:"balance"`
		Income  Money `json:"income"`
		Expense Money `json:"expense"`
	}

	// TrendBucket is one labeled time-series slot accumulating income
	// and expense totals for charting.
	TrendBucket struct {
		Label   string `json:"label"`
		Income  Money  `json:"income"`
		Expense Money  `json:"expense"`
	}

	// CategoryTotal is the absolute summed amount for one category,
	// used for proportional displays.
	CategoryTotal struct {
		Category string `json:"category"`
		Total    Money  `json:"total"`
	}
)

var (
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrInvalidTypeFilter = errors.New("invalid type filter")
)

// ParsePeriod validates a period string, mapping "" to all.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", ErrInvalidPeriod
}

// ParseTypeFilter validates a type filter string, mapping "" to all.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch TypeFilter(s) {
	case TypeAll, TypeIncome, TypeExpense:
		return TypeFilter(s), nil
	case "":
		return TypeAll, nil
	}
	return "", ErrInvalidTypeFilter
}

// ComputeSummary derives balance, income, and expense totals from a set
// of transactions. Empty input yields the all-zero summary.
func ComputeSummary(records []Transaction) Summary {
	var s Summary
	for _, tx := range records {
		s.Balance = s.Balance.Add(tx.Amount)
		switch {
		case tx.Amount.Cents > 0:
			s.Income = s.Income.Add(tx.Amount)
		case tx.Amount.Cents < 0:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	return s
}

// FilterByPeriod keeps transactions whose CreatedAt falls inside the
// calendar window anchored at ref. Comparison uses UTC calendar fields,
// not elapsed durations; week runs from the most recent Sunday through
// the following Saturday.
func FilterByPeriod(records []Transaction, period Period, ref time.Time) []Transaction {
	if period == PeriodAll {
		return records
	}

	refDate := DateOf(ref)
	keep := func(d Date) bool { return false }

	switch period {
	case PeriodDay:
		keep = func(d Date) bool { return d.SameDay(refDate) }
	case PeriodWeek:
		weekStart := refDate.AddDate(0, 0, -int(refDate.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 7)
		keep = func(d Date) bool {
			return !d.Before(weekStart) && d.Time.Before(weekEnd)
		}
	case PeriodMonth:
		keep = func(d Date) bool {
			return d.Year() == refDate.Year() && d.Month() == refDate.Month()
		}
	case PeriodYear:
		keep = func(d Date) bool { return d.Year() == refDate.Year() }
	}

	out := make([]Transaction, 0, len(records))
	for _, tx := range records {
		if keep(tx.CreatedAt) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByType keeps income transactions, their complement, or all.
func FilterByType(records []Transaction, typ TypeFilter) []Transaction {
	if typ == TypeAll {
		return records
	}
	out := make([]Transaction, 0, len(records))
	for _, tx := range records {
		if tx.IsIncome() == (typ == TypeIncome) {
			out = append(out, tx)
		}
	}
	return out
}

// SortByMostRecent returns a copy ordered by descending CreatedAt. The
// sort is stable so same-day records keep their input order.
func SortByMostRecent(records []Transaction) []Transaction {
	out := make([]Transaction, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	return out
}

// BucketForTrend groups transactions into labeled time-series buckets.
// The label derives from CreatedAt according to the period: day uses a
// time-of-day label, week and month a calendar-date label, year a month
// label. Buckets appear in the order their label was first seen while
// scanning records, which makes the output deterministic for a fixed
// input ordering.
func BucketForTrend(records []Transaction, period Period) []TrendBucket {
	buckets := make([]TrendBucket, 0)
	index := make(map[string]int)

	for _, tx := range records {
		label := trendLabel(tx.CreatedAt, period)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, TrendBucket{Label: label})
		}
		if tx.IsIncome() {
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}
	return buckets
}

func trendLabel(d Date, period Period) string {
	switch period {
	case PeriodDay:
		return d.Format("15:04")
	case PeriodYear:
		return d.Format("Jan")
	default:
		// week, month, and the all fallback use the calendar date
		return d.Format("2006-01-02")
	}
}

// CategoryBreakdown sums amounts per distinct category, returning the
// absolute value of each sum in first-seen category order. Categories
// whose amounts cancel out to zero are excluded.
func CategoryBreakdown(records []Transaction) []CategoryTotal {
	sums := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, tx := range records {
		i, ok := index[tx.Category]
		if !ok {
			i = len(sums)
			index[tx.Category] = i
			sums = append(sums, CategoryTotal{Category: tx.Category})
		}
		sums[i].Total = sums[i].Total.Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for _, ct := range sums {
		if ct.Total.IsZero() {
			continue
		}
		ct.Total = ct.Total.Abs()
		out = append(out, ct)
	}
	return out
}
