package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/currency"
	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// ExpenseService implements business logic for Expense operations.
//
// Its central rule is conversion-at-save: the converted amount is derived
// from the rate table at the moment an expense is created or updated, and
// never again. Later rate changes do not touch stored expenses.
type ExpenseService struct {
	expenses repo.ExpenseRepo
	trips    repo.TripRepo
	rates    repo.RateRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(expenses repo.ExpenseRepo, trips repo.TripRepo, rates repo.RateRepo) *ExpenseService {
	return &ExpenseService{expenses: expenses, trips: trips, rates: rates}
}

// Create validates a new expense, computes its converted amount in the
// owning trip's currency, and persists it.
// Returns domain.ErrNotFound when the owning trip does not exist.
func (s *ExpenseService) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if err := validateExpense(&e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	if err := s.applyConversion(ctx, &e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}

	created, err := s.expenses.Create(ctx, e)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single expense by ID.
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return e, nil
}

// List returns expenses, optionally filtered to one trip.
func (s *ExpenseService) List(ctx context.Context, tripID *uuid.UUID) ([]domain.Expense, error) {
	expenses, err := s.expenses.List(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	return expenses, nil
}

// ListPaged returns one page of expenses plus the total count.
func (s *ExpenseService) ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	expenses, total, err := s.expenses.ListPaged(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ExpenseService.ListPaged: %w", err)
	}
	return expenses, total, nil
}

// Update validates the expense, recomputes its converted amount against the
// current rate table, and overwrites the stored record.
func (s *ExpenseService) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if err := validateExpense(&e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	if err := s.applyConversion(ctx, &e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}

	updated, err := s.expenses.Update(ctx, e)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an expense by ID. Expenses are deleted independently —
// nothing else cascades from them.
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// applyConversion stamps e.ConvertedAmount with the expense amount in the
// owning trip's currency. A missing rate record is not an error: the raw
// amount is stored unconverted (silent fallback), logged at debug level so
// the degradation is at least observable.
func (s *ExpenseService) applyConversion(ctx context.Context, e *domain.Expense) error {
	trip, err := s.trips.GetByID(ctx, e.TripID)
	if err != nil {
		return err
	}

	rates, err := s.rates.List(ctx)
	if err != nil {
		return err
	}

	converted, rateApplied := currency.ConvertDetail(e.Amount, e.Currency, trip.Currency, rates)
	e.ConvertedAmount = converted
	if !rateApplied && e.Currency != trip.Currency {
		slog.DebugContext(ctx, "no exchange rate found, storing raw amount",
			"from", e.Currency, "to", trip.Currency, "trip_id", trip.ID)
	}
	return nil
}

// validateExpense enforces the expense invariants, normalizes the currency
// code, and applies the cash payment-mode default.
func validateExpense(e *domain.Expense) error {
	if e.TripID == uuid.Nil {
		return fmt.Errorf("%w: trip_id is required", domain.ErrValidation)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if err := normalizeCurrency(&e.Currency); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if e.CategoryID == "" {
		return fmt.Errorf("%w: category_id is required", domain.ErrValidation)
	}
	if e.PaymentModeID == "" {
		e.PaymentModeID = "cash"
	}
	return nil
}
