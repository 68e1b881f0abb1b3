package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/calendar"
	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/handler"
	"github.com/tripledger/tripledger/internal/service"
)

// Hand-written test doubles for the servicer interfaces.
// Each method is a function field — set only the ones your test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

type mockExpenseServicer struct {
	create    func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	listPaged func(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error)
	update    func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockExpenseServicer) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseServicer) ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	return m.listPaged(ctx, tripID, p)
}
func (m *mockExpenseServicer) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, e)
}
func (m *mockExpenseServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockRateServicer struct {
	list   func(ctx context.Context) ([]domain.ExchangeRate, error)
	create func(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)
	update func(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRateServicer) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	return m.list(ctx)
}
func (m *mockRateServicer) Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	return m.create(ctx, rate)
}
func (m *mockRateServicer) Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	return m.update(ctx, rate)
}
func (m *mockRateServicer) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

type mockRegistryServicer struct {
	list   func(ctx context.Context) ([]domain.RegistryEntry, error)
	create func(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error)
	update func(ctx context.Context, id string, entry domain.RegistryEntry) (domain.RegistryEntry, error)
	delete func(ctx context.Context, id string) (domain.RegistryEntry, error)
}

func (m *mockRegistryServicer) List(ctx context.Context) ([]domain.RegistryEntry, error) {
	return m.list(ctx)
}
func (m *mockRegistryServicer) Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	return m.create(ctx, entry)
}
func (m *mockRegistryServicer) Update(ctx context.Context, id string, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	return m.update(ctx, id, entry)
}
func (m *mockRegistryServicer) Delete(ctx context.Context, id string) (domain.RegistryEntry, error) {
	return m.delete(ctx, id)
}

type mockStatsServicer struct {
	tripStats func(ctx context.Context, tripID uuid.UUID) (domain.BudgetStats, error)
}

func (m *mockStatsServicer) TripStats(ctx context.Context, tripID uuid.UUID) (domain.BudgetStats, error) {
	return m.tripStats(ctx, tripID)
}

type mockCalendarServicer struct {
	view func(ctx context.Context, tripID *uuid.UUID, view calendar.View, ref time.Time, categoryID string) (service.CalendarPage, error)
}

func (m *mockCalendarServicer) View(ctx context.Context, tripID *uuid.UUID, view calendar.View, ref time.Time, categoryID string) (service.CalendarPage, error) {
	return m.view(ctx, tripID, view, ref, categoryID)
}

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// newTestRouter wires a Server around the given mocks and returns its router.
func newTestRouter(svcs handler.Services) http.Handler {
	return handler.NewServer(svcs).Routes()
}
