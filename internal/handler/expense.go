package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripledger/tripledger/internal/domain"
)

// expenseRequest is the JSON body of POST /expenses and PUT /expenses/{id}.
// ConvertedAmount is never accepted from the client; it is derived at save
// time from the rate table.
type expenseRequest struct {
	TripID        uuid.UUID          `json:"trip_id"`
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency"`
	CategoryID    string             `json:"category_id"`
	PaymentModeID string             `json:"payment_mode_id"`
	Merchant      string             `json:"merchant"`
	Date          openapi_types.Date `json:"date"`
	Notes         string             `json:"notes"`
	ReceiptURL    string             `json:"receipt_url"`
}

type expenseResponse struct {
	ID              uuid.UUID          `json:"id"`
	TripID          uuid.UUID          `json:"trip_id"`
	Amount          float64            `json:"amount"`
	Currency        string             `json:"currency"`
	ConvertedAmount float64            `json:"converted_amount"`
	CategoryID      string             `json:"category_id"`
	PaymentModeID   string             `json:"payment_mode_id"`
	Merchant        string             `json:"merchant,omitempty"`
	Date            openapi_types.Date `json:"date"`
	Notes           string             `json:"notes,omitempty"`
	ReceiptURL      string             `json:"receipt_url,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// CreateExpense handles POST /expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.svcs.Expenses.Create(r.Context(), requestToExpense(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListExpenses handles GET /expenses.
// Supports ?trip_id= to restrict to one trip and ?page=/?limit= pagination
// (defaults: page=1, limit=20, max=100). Expenses come back newest first.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, ok := queryUUID(w, r, "trip_id")
	if !ok {
		return
	}
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	expenses, total, err := s.svcs.Expenses.ListPaged(r.Context(), tripID, params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		data[i] = expenseToResponse(e)
	}
	respondJSON(w, http.StatusOK, pagedResponse[expenseResponse]{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetExpense handles GET /expenses/{id}.
func (s *Server) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	expense, err := s.svcs.Expenses.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, expenseToResponse(expense))
}

// UpdateExpense handles PUT /expenses/{id}. The conversion is re-derived
// from the current rate table as part of the update.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	expense := requestToExpense(req)
	expense.ID = id
	updated, err := s.svcs.Expenses.Update(r.Context(), expense)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, expenseToResponse(updated))
}

// DeleteExpense handles DELETE /expenses/{id}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.svcs.Expenses.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// queryUUID parses an optional UUID query parameter. A present but
// malformed value is a 422; absent returns (nil, true).
func queryUUID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(w, name+" must be a UUID")
		return nil, false
	}
	return &id, true
}

// queryInt parses an optional integer query parameter, ignoring junk.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func requestToExpense(req expenseRequest) domain.Expense {
	return domain.Expense{
		TripID:        req.TripID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CategoryID:    req.CategoryID,
		PaymentModeID: req.PaymentModeID,
		Merchant:      req.Merchant,
		Date:          req.Date.Time,
		Notes:         req.Notes,
		ReceiptURL:    req.ReceiptURL,
	}
}

func expenseToResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:              e.ID,
		TripID:          e.TripID,
		Amount:          e.Amount,
		Currency:        e.Currency,
		ConvertedAmount: e.ConvertedAmount,
		CategoryID:      e.CategoryID,
		PaymentModeID:   e.PaymentModeID,
		Merchant:        e.Merchant,
		Date:            openapi_types.Date{Time: e.Date},
		Notes:           e.Notes,
		ReceiptURL:      e.ReceiptURL,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
