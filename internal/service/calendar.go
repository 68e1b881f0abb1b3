package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/calendar"
	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// DayBucket is one day cell of a calendar view: the day, the expenses dated
// on it, and their total in trip currency.
type DayBucket struct {
	Date     time.Time        `json:"date"`
	Expenses []domain.Expense `json:"expenses"`
	Total    float64          `json:"total"`
}

// CalendarPage is one rendered calendar view. For the month view Days holds
// complete weeks (a multiple of 7 cells, Sunday first, lead/trail days from
// adjacent months included); for the week view exactly 7 days; for the day
// view a single bucket. Previous and Next are the reference dates one
// navigation step away at the same granularity.
type CalendarPage struct {
	View      calendar.View `json:"view"`
	Reference time.Time     `json:"reference"`
	Previous  time.Time     `json:"previous"`
	Next      time.Time     `json:"next"`
	Days      []DayBucket   `json:"days"`
}

// CalendarService projects expenses into calendar views.
type CalendarService struct {
	expenses repo.ExpenseRepo
}

// NewCalendarService constructs a CalendarService backed by the expense repo.
func NewCalendarService(expenses repo.ExpenseRepo) *CalendarService {
	return &CalendarService{expenses: expenses}
}

// View builds the calendar page for the given granularity around ref.
// tripID optionally restricts to one trip; categoryID applies the category
// filter ("all" or empty disables it). The projection is recomputed on
// every call — there is deliberately no caching at this data scale.
func (s *CalendarService) View(ctx context.Context, tripID *uuid.UUID, view calendar.View, ref time.Time, categoryID string) (CalendarPage, error) {
	if !view.Valid() {
		return CalendarPage{}, fmt.Errorf("service.CalendarService.View: %w: unknown view %q", domain.ErrValidation, view)
	}

	expenses, err := s.expenses.List(ctx, tripID)
	if err != nil {
		return CalendarPage{}, fmt.Errorf("service.CalendarService.View: %w", err)
	}
	if categoryID != "" {
		expenses = calendar.FilterByCategory(expenses, categoryID)
	}

	page := CalendarPage{
		View:      view,
		Reference: calendar.StartOfDay(ref),
		Previous:  calendar.StartOfDay(calendar.Step(ref, view, -1)),
		Next:      calendar.StartOfDay(calendar.Step(ref, view, 1)),
	}

	switch view {
	case calendar.ViewMonth:
		for _, row := range calendar.MonthGrid(ref) {
			for _, d := range row {
				page.Days = append(page.Days, bucketFor(expenses, d))
			}
		}
	case calendar.ViewWeek:
		for _, d := range calendar.WeekDays(ref) {
			page.Days = append(page.Days, bucketFor(expenses, d))
		}
	case calendar.ViewDay:
		page.Days = []DayBucket{bucketFor(expenses, calendar.StartOfDay(ref))}
	}

	return page, nil
}

func bucketFor(expenses []domain.Expense, d time.Time) DayBucket {
	b := DayBucket{Date: d, Expenses: calendar.ExpensesOn(expenses, d)}
	for _, e := range b.Expenses {
		b.Total += e.EffectiveAmount()
	}
	return b
}
