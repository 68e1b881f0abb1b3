package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExchangeRate is a directional conversion rate between two currency codes.
// A rate From→To says nothing about To→From: lookup is exact, with no
// inverse or multi-hop resolution.
type ExchangeRate struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"` // source currency code
	To        string    `json:"to"`   // target currency code
	Rate      float64   `json:"rate"` // always > 0
	Timestamp time.Time `json:"timestamp"`
}
