package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single spend event attributed to a trip, category, and
// payment mode.
//
// ConvertedAmount is the amount expressed in the owning trip's currency,
// computed once when the expense is created or updated. It equals Amount
// when the expense currency matches the trip currency, or when no exchange
// rate was available at save time (silent fallback). It is never recomputed
// retroactively when rates change.
//
// CategoryID and PaymentModeID are weak references to registry entries.
// Dangling references are tolerated — display layers resolve them to a
// fallback entry rather than erroring.
type Expense struct {
	ID              uuid.UUID `json:"id"`
	TripID          uuid.UUID `json:"trip_id"`
	Amount          float64   `json:"amount"` // always > 0, in Currency
	Currency        string    `json:"currency"`
	ConvertedAmount float64   `json:"converted_amount"` // in trip currency
	CategoryID      string    `json:"category_id"`
	PaymentModeID   string    `json:"payment_mode_id"` // defaults to "cash"
	Merchant        string    `json:"merchant,omitempty"`
	Date            time.Time `json:"date"` // calendar-day granularity
	Notes           string    `json:"notes,omitempty"`
	ReceiptURL      string    `json:"receipt_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EffectiveAmount returns the expense value in the trip's currency:
// ConvertedAmount when one was stored, the raw Amount otherwise.
// Aggregation always uses this — it never re-derives conversion.
func (e Expense) EffectiveAmount() float64 {
	if e.ConvertedAmount != 0 {
		return e.ConvertedAmount
	}
	return e.Amount
}
