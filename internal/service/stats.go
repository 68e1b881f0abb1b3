package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// Budget status thresholds, inclusive: a trip at exactly 90% is critical
// and one at exactly 75% is warning.
const (
	criticalThreshold = 90.0
	warningThreshold  = 75.0
)

// ComputeStats rolls the given expenses up into trip-level budget stats.
// It is pure: expenses not referencing trip.ID are ignored, stored converted
// amounts are summed as-is (conversion is never re-derived here), and the
// displayed progress is capped at 100 while Remaining uses the uncapped sum.
//
// A zero or negative budget reports 100%/critical rather than dividing by
// zero — any spend against no budget is over budget by definition.
func ComputeStats(trip domain.Trip, expenses []domain.Expense) domain.BudgetStats {
	var total float64
	for _, e := range expenses {
		if e.TripID == trip.ID {
			total += e.EffectiveAmount()
		}
	}

	stats := domain.BudgetStats{
		TotalSpent: total,
		Remaining:  trip.Budget - total,
	}

	if trip.Budget <= 0 {
		stats.ProgressPercent = 100
	} else {
		stats.ProgressPercent = total / trip.Budget * 100
		if stats.ProgressPercent > 100 {
			stats.ProgressPercent = 100
		}
	}

	switch {
	case stats.ProgressPercent >= criticalThreshold:
		stats.Status = domain.BudgetCritical
	case stats.ProgressPercent >= warningThreshold:
		stats.Status = domain.BudgetWarning
	default:
		stats.Status = domain.BudgetNormal
	}
	return stats
}

// StatsService loads a trip and its expenses and computes the budget roll-up.
type StatsService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewStatsService constructs a StatsService backed by the provided repos.
func NewStatsService(trips repo.TripRepo, expenses repo.ExpenseRepo) *StatsService {
	return &StatsService{trips: trips, expenses: expenses}
}

// TripStats returns the budget stats for one trip.
// Returns domain.ErrNotFound when the trip does not exist.
func (s *StatsService) TripStats(ctx context.Context, tripID uuid.UUID) (domain.BudgetStats, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.BudgetStats{}, fmt.Errorf("service.StatsService.TripStats: %w", err)
	}

	expenses, err := s.expenses.List(ctx, &tripID)
	if err != nil {
		return domain.BudgetStats{}, fmt.Errorf("service.StatsService.TripStats: %w", err)
	}

	return ComputeStats(trip, expenses), nil
}
