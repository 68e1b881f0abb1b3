package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/service"
)

func statsTrip(budget float64) domain.Trip {
	return domain.Trip{
		ID:       uuid.New(),
		Name:     "Stats Trip",
		Budget:   budget,
		Currency: "USD",
	}
}

func spent(tripID uuid.UUID, converted float64) domain.Expense {
	return domain.Expense{ID: uuid.New(), TripID: tripID, Amount: converted, ConvertedAmount: converted}
}

// ---- ComputeStats ----------------------------------------------------------

func TestComputeStats_SumsConvertedAmounts(t *testing.T) {
	trip := statsTrip(1000)
	expenses := []domain.Expense{
		spent(trip.ID, 100),
		spent(trip.ID, 150),
		spent(uuid.New(), 999), // other trip, ignored
	}

	stats := service.ComputeStats(trip, expenses)

	assert.InDelta(t, 250.0, stats.TotalSpent, 1e-9)
	assert.InDelta(t, 750.0, stats.Remaining, 1e-9)
	assert.InDelta(t, 25.0, stats.ProgressPercent, 1e-9)
	assert.Equal(t, domain.BudgetNormal, stats.Status)
}

func TestComputeStats_FallsBackToRawAmount(t *testing.T) {
	trip := statsTrip(1000)
	// An expense with no stored conversion contributes its raw amount —
	// aggregation never re-derives conversion.
	expenses := []domain.Expense{
		{ID: uuid.New(), TripID: trip.ID, Amount: 300, Currency: "EUR"},
	}

	stats := service.ComputeStats(trip, expenses)

	assert.InDelta(t, 300.0, stats.TotalSpent, 1e-9)
}

func TestComputeStats_OverBudget_CapsProgressNotRemaining(t *testing.T) {
	trip := statsTrip(1000)
	expenses := []domain.Expense{spent(trip.ID, 1500)}

	stats := service.ComputeStats(trip, expenses)

	assert.InDelta(t, 100.0, stats.ProgressPercent, 1e-9, "display progress caps at 100")
	assert.InDelta(t, -500.0, stats.Remaining, 1e-9, "remaining keeps the uncapped overshoot")
	assert.Equal(t, domain.BudgetCritical, stats.Status)
}

func TestComputeStats_ThresholdBoundaries(t *testing.T) {
	cases := []struct {
		spent float64
		want  domain.BudgetStatus
	}{
		{900, domain.BudgetCritical},   // exactly 90% — inclusive
		{899.99, domain.BudgetWarning}, // 89.999%
		{750, domain.BudgetWarning},    // exactly 75% — inclusive
		{749.99, domain.BudgetNormal},  // 74.999%
		{0, domain.BudgetNormal},
	}
	for _, tc := range cases {
		trip := statsTrip(1000)
		stats := service.ComputeStats(trip, []domain.Expense{spent(trip.ID, tc.spent)})
		assert.Equal(t, tc.want, stats.Status, "spent=%v", tc.spent)
	}
}

func TestComputeStats_ZeroBudget_DeterministicCritical(t *testing.T) {
	trip := statsTrip(0)
	stats := service.ComputeStats(trip, []domain.Expense{spent(trip.ID, 10)})

	assert.Equal(t, 100.0, stats.ProgressPercent, "no NaN/Inf leaks to callers")
	assert.Equal(t, domain.BudgetCritical, stats.Status)
	assert.InDelta(t, -10.0, stats.Remaining, 1e-9)
}

func TestComputeStats_NoExpenses(t *testing.T) {
	trip := statsTrip(1000)
	stats := service.ComputeStats(trip, nil)

	assert.Zero(t, stats.TotalSpent)
	assert.InDelta(t, 1000.0, stats.Remaining, 1e-9)
	assert.Equal(t, domain.BudgetNormal, stats.Status)
}

// ---- StatsService ----------------------------------------------------------

func TestStatsService_TripStats_EndToEnd(t *testing.T) {
	// Trip{budget:1000, USD}; one EUR expense converted at 1.1 → 55 spent.
	trip := statsTrip(1000)
	converted := domain.Expense{
		ID: uuid.New(), TripID: trip.ID,
		Amount: 50, Currency: "EUR", ConvertedAmount: 55,
		Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}

	trips := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) { return trip, nil },
	}
	expenses := &mockExpenseRepo{
		list: func(_ context.Context, tripID *uuid.UUID) ([]domain.Expense, error) {
			require.NotNil(t, tripID)
			return []domain.Expense{converted}, nil
		},
	}
	svc := service.NewStatsService(trips, expenses)

	stats, err := svc.TripStats(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.InDelta(t, 55.0, stats.TotalSpent, 1e-9)
	assert.InDelta(t, 5.5, stats.ProgressPercent, 1e-9)
	assert.Equal(t, domain.BudgetNormal, stats.Status)
}

func TestStatsService_TripStats_UnknownTrip(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewStatsService(trips, &mockExpenseRepo{})

	_, err := svc.TripStats(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
