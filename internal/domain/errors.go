package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the data store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date,
// non-positive budget or amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicateName is returned when creating a category or payment mode
// whose name collides case-insensitively with an existing entry, or whose
// derived identifier collides with an existing identifier.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicateName = errors.New("duplicate name")

// ErrProtected is returned when attempting to delete a default category or
// payment mode. Defaults are seeded at startup and cannot be removed.
// Handlers should map this to HTTP 403 Forbidden.
var ErrProtected = errors.New("protected entry")
