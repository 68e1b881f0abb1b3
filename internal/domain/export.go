package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per expense, with trip fields
// repeated for every expense on that trip. Trips with no expenses yield one
// row with zero values for all expense fields.
//
// Amounts are formatted by the caller; dates are "2006-01-02" strings so the
// CSV is stable regardless of time zone.
type ExportRow struct {
	// Trip fields — repeated for every expense on the trip.
	TripID       string
	TripName     string
	TripCurrency string

	// Expense fields — zero values when the trip has no expenses.
	ExpenseID       string
	Date            string // "2006-01-02" formatted date, empty when no expense
	Merchant        string
	CategoryID      string
	PaymentModeID   string
	Amount          float64
	Currency        string
	ConvertedAmount float64
	Notes           string
}
