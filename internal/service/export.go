package service

import (
	"context"
	"fmt"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// ExportService assembles a full flat export of all trips and expenses.
type ExportService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExportService {
	return &ExportService{trips: trips, expenses: expenses}
}

// Export returns one ExportRow per expense across all trips, in trip list
// order. Trips with no expenses contribute one row with empty expense fields.
// Expenses whose trip no longer exists are omitted — they are dangling weak
// references with no trip fields to denormalize.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	expenses, err := s.expenses.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	byTrip := make(map[string][]domain.Expense, len(trips))
	for _, e := range expenses {
		byTrip[e.TripID.String()] = append(byTrip[e.TripID.String()], e)
	}

	rows := []domain.ExportRow{}
	for _, t := range trips {
		tripRow := domain.ExportRow{
			TripID:       t.ID.String(),
			TripName:     t.Name,
			TripCurrency: t.Currency,
		}

		owned := byTrip[t.ID.String()]
		if len(owned) == 0 {
			rows = append(rows, tripRow)
			continue
		}
		for _, e := range owned {
			row := tripRow
			row.ExpenseID = e.ID.String()
			row.Date = e.Date.Format("2006-01-02")
			row.Merchant = e.Merchant
			row.CategoryID = e.CategoryID
			row.PaymentModeID = e.PaymentModeID
			row.Amount = e.Amount
			row.Currency = e.Currency
			row.ConvertedAmount = e.ConvertedAmount
			row.Notes = e.Notes
			rows = append(rows, row)
		}
	}

	return rows, nil
}
