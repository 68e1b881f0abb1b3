package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/handler"
)

func exportRows() []domain.ExportRow {
	tripID := uuid.NewString()
	return []domain.ExportRow{
		{
			TripID: tripID, TripName: "Summer in Japan", TripCurrency: "USD",
			ExpenseID: uuid.NewString(), Date: "2025-06-03", Merchant: "Ramen Street",
			CategoryID: "meals", PaymentModeID: "cash",
			Amount: 50, Currency: "EUR", ConvertedAmount: 55,
		},
		// Placeholder row for a trip with no expenses.
		{TripID: uuid.NewString(), TripName: "Winter in Norway", TripCurrency: "EUR"},
	}
}

func TestGetExport_JSONDefault(t *testing.T) {
	router := newTestRouter(handler.Services{
		Export: &mockExportServicer{
			export: func(_ context.Context) ([]domain.ExportRow, error) { return exportRows(), nil },
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Ramen Street", rows[0]["merchant"])
	assert.NotContains(t, rows[1], "expense_id", "expense fields omitted on placeholder rows")
}

func TestGetExport_CSVFormat(t *testing.T) {
	router := newTestRouter(handler.Services{
		Export: &mockExportServicer{
			export: func(_ context.Context) ([]domain.ExportRow, error) { return exportRows(), nil },
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one line per row")

	header := records[0]
	assert.Equal(t, "trip_id", header[0])
	assert.Equal(t, "notes", header[len(header)-1])

	assert.Equal(t, "Summer in Japan", records[1][1])
	assert.Equal(t, "50.00", records[1][8], "amounts rendered with two decimals")
	assert.Equal(t, "55.00", records[1][10])

	assert.Equal(t, "", records[2][8], "placeholder rows have empty amount cells")
}
