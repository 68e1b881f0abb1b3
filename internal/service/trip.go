// Package service contains the business logic for the TripLedger API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewTripService constructs a TripService backed by the provided repos.
// The expense repo is needed for the delete cascade.
func NewTripService(trips repo.TripRepo, expenses repo.ExpenseRepo) *TripService {
	return &TripService{trips: trips, expenses: expenses}
}

// Create validates and persists a new trip. Status defaults to active when
// unset, matching how the original creation flow stamps new trips.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.Status == "" {
		trip.Status = domain.TripActive
	}
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}

// Update validates and updates an existing trip.
// Stored expense conversions are not recomputed when the trip currency
// changes — converted amounts are fixed at expense save time.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and cascades to its expenses, so no orphaned
// expense rows are left behind.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if _, err := s.expenses.DeleteByTrip(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: cascade: %w", err)
	}
	return nil
}

// validateTrip enforces the trip invariants and normalizes the currency
// code. It mutates trip in place (trimming and upper-casing).
func validateTrip(trip *domain.Trip) error {
	trip.Name = strings.TrimSpace(trip.Name)
	if trip.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if !trip.EndDate.After(trip.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}
	if trip.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", domain.ErrValidation)
	}
	if err := normalizeCurrency(&trip.Currency); err != nil {
		return err
	}
	if !trip.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, trip.Status)
	}
	return nil
}

// normalizeCurrency trims and upper-cases a currency code in place,
// rejecting anything that is not three letters.
func normalizeCurrency(code *string) error {
	c := strings.ToUpper(strings.TrimSpace(*code))
	if len(c) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
		}
	}
	*code = c
	return nil
}
