package models

import "errors"

// Sentinel errors shared between repositories, services and the HTTP
// layer. Controllers translate them into status codes and the `code`
// field of ErrorResponse.
var (
	ErrNotFound         = errors.New("not found")
	ErrProductsNotFound = errors.New("One or more products not found")
	ErrDuplicateCart    = errors.New("An order for this cart was already submitted")
)

// ValidationError carries a user-facing message for a request rejected
// before any persistence. Handlers map it to a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
