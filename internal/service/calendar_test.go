package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripledger/tripledger/internal/calendar"
	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/service"
)

func calendarExpenses(tripID uuid.UUID) []domain.Expense {
	return []domain.Expense{
		{ID: uuid.New(), TripID: tripID, CategoryID: "meals", Amount: 20, ConvertedAmount: 20,
			Date: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), TripID: tripID, CategoryID: "transport", Amount: 15, ConvertedAmount: 15,
			Date: time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), TripID: tripID, CategoryID: "meals", Amount: 40, ConvertedAmount: 40,
			Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
	}
}

func calendarSvc(expenses []domain.Expense) *service.CalendarService {
	return service.NewCalendarService(&mockExpenseRepo{
		list: func(_ context.Context, _ *uuid.UUID) ([]domain.Expense, error) {
			return expenses, nil
		},
	})
}

func TestCalendarService_MonthView_FullWeeks(t *testing.T) {
	svc := calendarSvc(calendarExpenses(uuid.New()))

	page, err := svc.View(context.Background(), nil, calendar.ViewMonth,
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "")

	require.NoError(t, err)
	require.Len(t, page.Days, 35, "June 2025 renders as 5 full weeks")
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), page.Days[0].Date)

	var total float64
	for _, d := range page.Days {
		total += d.Total
	}
	assert.InDelta(t, 75.0, total, 1e-9, "all three expenses land in the grid")
}

func TestCalendarService_WeekView_BucketsByDay(t *testing.T) {
	svc := calendarSvc(calendarExpenses(uuid.New()))

	// 2025-06-10 is a Tuesday; its week runs Sunday 06-08 through 06-14.
	page, err := svc.View(context.Background(), nil, calendar.ViewWeek,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "")

	require.NoError(t, err)
	require.Len(t, page.Days, 7)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), page.Days[0].Date)

	tuesday := page.Days[2]
	assert.Len(t, tuesday.Expenses, 2, "both 06-10 expenses bucket together regardless of time of day")
	assert.InDelta(t, 35.0, tuesday.Total, 1e-9)
}

func TestCalendarService_DayView_SingleBucket(t *testing.T) {
	svc := calendarSvc(calendarExpenses(uuid.New()))

	page, err := svc.View(context.Background(), nil, calendar.ViewDay,
		time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), "")

	require.NoError(t, err)
	require.Len(t, page.Days, 1)
	assert.Len(t, page.Days[0].Expenses, 1)
	assert.InDelta(t, 40.0, page.Days[0].Total, 1e-9)
}

func TestCalendarService_CategoryFilterApplies(t *testing.T) {
	svc := calendarSvc(calendarExpenses(uuid.New()))

	page, err := svc.View(context.Background(), nil, calendar.ViewDay,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "meals")

	require.NoError(t, err)
	require.Len(t, page.Days, 1)
	assert.Len(t, page.Days[0].Expenses, 1, "transport expense filtered out")
}

func TestCalendarService_NavigationDates(t *testing.T) {
	svc := calendarSvc(nil)
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	month, err := svc.View(context.Background(), nil, calendar.ViewMonth, ref, "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), month.Previous)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), month.Next)

	week, err := svc.View(context.Background(), nil, calendar.ViewWeek, ref, "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), week.Previous)
	assert.Equal(t, time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), week.Next)
}

func TestCalendarService_UnknownView_Validation(t *testing.T) {
	svc := calendarSvc(nil)

	_, err := svc.View(context.Background(), nil, calendar.View("year"), time.Now(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
