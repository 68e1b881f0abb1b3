package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockExpenseRepo struct {
	create       func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	list         func(ctx context.Context, tripID *uuid.UUID) ([]domain.Expense, error)
	listPaged    func(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error)
	update       func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	delete       func(ctx context.Context, id uuid.UUID) error
	deleteByTrip func(ctx context.Context, tripID uuid.UUID) (int64, error)
}

func (m *mockExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseRepo) List(ctx context.Context, tripID *uuid.UUID) ([]domain.Expense, error) {
	return m.list(ctx, tripID)
}
func (m *mockExpenseRepo) ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	return m.listPaged(ctx, tripID, p)
}
func (m *mockExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, e)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockExpenseRepo) DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	return m.deleteByTrip(ctx, tripID)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

type mockRateRepo struct {
	create  func(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.ExchangeRate, error)
	list    func(ctx context.Context) ([]domain.ExchangeRate, error)
	update  func(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRateRepo) Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	return m.create(ctx, rate)
}
func (m *mockRateRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ExchangeRate, error) {
	return m.getByID(ctx, id)
}
func (m *mockRateRepo) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	return m.list(ctx)
}
func (m *mockRateRepo) Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	return m.update(ctx, rate)
}
func (m *mockRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.RateRepo = (*mockRateRepo)(nil)

type mockRegistryRepo struct {
	list    func(ctx context.Context) ([]domain.RegistryEntry, error)
	getByID func(ctx context.Context, id string) (domain.RegistryEntry, error)
	create  func(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error)
	update  func(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error)
	delete  func(ctx context.Context, id string) (domain.RegistryEntry, error)
}

func (m *mockRegistryRepo) List(ctx context.Context) ([]domain.RegistryEntry, error) {
	return m.list(ctx)
}
func (m *mockRegistryRepo) GetByID(ctx context.Context, id string) (domain.RegistryEntry, error) {
	return m.getByID(ctx, id)
}
func (m *mockRegistryRepo) Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	return m.create(ctx, entry)
}
func (m *mockRegistryRepo) Update(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	return m.update(ctx, entry)
}
func (m *mockRegistryRepo) Delete(ctx context.Context, id string) (domain.RegistryEntry, error) {
	return m.delete(ctx, id)
}

var _ repo.RegistryRepo = (*mockRegistryRepo)(nil)
