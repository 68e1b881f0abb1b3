package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV
// export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_currency",
	"expense_id", "date", "merchant", "category_id", "payment_mode_id",
	"amount", "currency", "converted_amount", "notes",
}

// exportRow is the JSON shape of one export row. Expense fields are omitted
// on the placeholder row of a trip without expenses.
type exportRow struct {
	TripID       uuid.UUID `json:"trip_id"`
	TripName     string    `json:"trip_name"`
	TripCurrency string    `json:"trip_currency"`

	ExpenseID       string  `json:"expense_id,omitempty"`
	Date            string  `json:"date,omitempty"`
	Merchant        string  `json:"merchant,omitempty"`
	CategoryID      string  `json:"category_id,omitempty"`
	PaymentModeID   string  `json:"payment_mode_id,omitempty"`
	Amount          float64 `json:"amount,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	ConvertedAmount float64 `json:"converted_amount,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// GetExport handles GET /export.
// It returns a flat table of every trip and expense: one row per expense,
// trip fields repeated, and a single placeholder row for trips without
// expenses. Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svcs.Export.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRow, len(rows))
	for i, row := range rows {
		out[i] = domainRowToJSON(row)
	}
	respondJSON(w, http.StatusOK, out)
}

// writeCSV encodes the rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="tripledger-export.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck — nothing useful to do with a failed response write.
	w.Write(buf.Bytes())
}

func domainRowToJSON(r domain.ExportRow) exportRow {
	tripID, _ := uuid.Parse(r.TripID)
	return exportRow{
		TripID:          tripID,
		TripName:        r.TripName,
		TripCurrency:    r.TripCurrency,
		ExpenseID:       r.ExpenseID,
		Date:            r.Date,
		Merchant:        r.Merchant,
		CategoryID:      r.CategoryID,
		PaymentModeID:   r.PaymentModeID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		ConvertedAmount: r.ConvertedAmount,
		Notes:           r.Notes,
	}
}

// domainRowToCSVRecord encodes one export row as a flat string slice.
// Amount cells on a placeholder row are empty, not "0.00".
func domainRowToCSVRecord(r domain.ExportRow) []string {
	amount, converted := "", ""
	if r.ExpenseID != "" {
		amount = formatAmount(r.Amount)
		converted = formatAmount(r.ConvertedAmount)
	}
	return []string{
		r.TripID,
		r.TripName,
		r.TripCurrency,
		r.ExpenseID,
		r.Date,
		r.Merchant,
		r.CategoryID,
		r.PaymentModeID,
		amount,
		r.Currency,
		converted,
		r.Notes,
	}
}

// formatAmount renders a monetary value with two decimal places.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
