// Package handler implements the HTTP handlers for the TripLedger API.
// All handlers are methods on Server, split into resource-specific files
// (trip.go, expense.go, etc.) that share the same Server struct. Routing
// lives in Routes; request/response mapping and status-code selection live
// here, business rules do not.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/calendar"
	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/service"
)

// The servicer interfaces below define the business operations each handler
// depends on. Defining them here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseServicer defines the expense operations the handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error)
	Update(ctx context.Context, e domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RateServicer defines the exchange-rate operations the handlers depend on.
type RateServicer interface {
	List(ctx context.Context) ([]domain.ExchangeRate, error)
	Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)
	Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegistryServicer defines the category/payment-mode operations the
// handlers depend on. Both registries share the interface.
type RegistryServicer interface {
	List(ctx context.Context) ([]domain.RegistryEntry, error)
	Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error)
	Update(ctx context.Context, id string, entry domain.RegistryEntry) (domain.RegistryEntry, error)
	Delete(ctx context.Context, id string) (domain.RegistryEntry, error)
}

// StatsServicer computes the per-trip budget roll-up.
type StatsServicer interface {
	TripStats(ctx context.Context, tripID uuid.UUID) (domain.BudgetStats, error)
}

// CalendarServicer projects expenses into calendar views.
type CalendarServicer interface {
	View(ctx context.Context, tripID *uuid.UUID, view calendar.View, ref time.Time, categoryID string) (service.CalendarPage, error)
}

// ExportServicer produces the flat export table.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Services bundles the business dependencies of the HTTP layer.
type Services struct {
	Trips        TripServicer
	Expenses     ExpenseServicer
	Rates        RateServicer
	Categories   RegistryServicer
	PaymentModes RegistryServicer
	Stats        StatsServicer
	Calendar     CalendarServicer
	Export       ExportServicer
}

// Server implements the HTTP API. Methods are in resource-specific files
// but all operate on this struct.
type Server struct {
	svcs Services
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svcs Services) *Server {
	return &Server{svcs: svcs}
}

// Routes returns the API router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.Health)
	r.Get("/openapi.yaml", s.OpenAPISpec)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/stats", s.GetTripStats)
		})
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", s.ListExpenses)
		r.Post("/", s.CreateExpense)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetExpense)
			r.Put("/", s.UpdateExpense)
			r.Delete("/", s.DeleteExpense)
		})
	})

	r.Route("/rates", func(r chi.Router) {
		r.Get("/", s.ListRates)
		r.Post("/", s.CreateRate)
		r.Put("/{id}", s.UpdateRate)
		r.Delete("/{id}", s.DeleteRate)
	})

	r.Route("/categories", registryHandler{svc: s.svcs.Categories, kind: "category"}.routes)
	r.Route("/payment-modes", registryHandler{svc: s.svcs.PaymentModes, kind: "payment mode"}.routes)

	r.Get("/calendar", s.GetCalendar)
	r.Get("/export", s.GetExport)

	return r
}
