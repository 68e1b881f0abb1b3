// Package calendar implements the expense filter and view projector: pure
// functions that slice a flat expense list into category subsets and
// day/week/month calendar buckets. Bucketing is calendar-day granular —
// time-of-day never matters here.
package calendar

import (
	"time"

	"github.com/tripledger/tripledger/internal/domain"
)

// View selects the calendar granularity.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Valid reports whether v is a known view granularity.
func (v View) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

// AllCategories is the filter value that disables category filtering.
const AllCategories = "all"

// FilterByCategory returns the expenses matching categoryID, preserving the
// order of the input slice. Passing AllCategories returns the input
// unchanged. The operation is idempotent: filtering a filtered result with
// the same category is a no-op.
func FilterByCategory(expenses []domain.Expense, categoryID string) []domain.Expense {
	if categoryID == AllCategories {
		return expenses
	}
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// ExpensesOn returns the expenses dated on the same calendar day as day,
// in input order. Time-of-day on both sides is ignored.
func ExpensesOn(expenses []domain.Expense, day time.Time) []domain.Expense {
	out := make([]domain.Expense, 0, 4)
	for _, e := range expenses {
		if sameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday beginning the week containing t,
// truncated to midnight. Weeks start on Sunday.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// MonthGrid returns the day cells of the month view containing ref: full
// weeks (rows of 7 days, Sunday first) from the week containing the 1st of
// the month through the week containing the month's last day. Leading and
// trailing days from adjacent months are included, so every row is complete.
func MonthGrid(ref time.Time) [][]time.Time {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	var rows [][]time.Time
	for d := StartOfWeek(monthStart); !d.After(monthEnd); {
		row := make([]time.Time, 7)
		for i := range row {
			row[i] = d
			d = d.AddDate(0, 0, 1)
		}
		rows = append(rows, row)
	}
	return rows
}

// WeekDays returns the 7 contiguous days of the week containing ref,
// starting from the week start.
func WeekDays(ref time.Time) []time.Time {
	days := make([]time.Time, 7)
	d := StartOfWeek(ref)
	for i := range days {
		days[i] = d
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// Step shifts the reference date by delta units of the active view:
// one month, one week (7 days), or one day per unit. Use delta -1/+1 for
// previous/next navigation.
func Step(ref time.Time, v View, delta int) time.Time {
	switch v {
	case ViewMonth:
		return ref.AddDate(0, delta, 0)
	case ViewWeek:
		return ref.AddDate(0, 0, 7*delta)
	default:
		return ref.AddDate(0, 0, delta)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
