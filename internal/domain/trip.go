// Package domain contains the core data types for the TripLedger application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the author-set lifecycle label of a trip.
// Nothing in the core transitions a trip automatically; the status is
// whatever the owner last set it to.
type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripPlanned   TripStatus = "planned"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripActive, TripCompleted, TripPlanned:
		return true
	}
	return false
}

// Trip represents a budgeted travel period with a base currency.
// A trip is the top-level aggregate; expenses reference it by ID but are
// not contained in it.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"` // always after StartDate
	Budget      float64    `json:"budget"`   // always > 0
	Currency    string     `json:"currency"` // ISO-4217-like code, e.g. "USD"
	Status      TripStatus `json:"status"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
