package domain

import "errors"

// Client-caused failures. Controllers map these to HTTP 400 with a
// human-readable message; any other error becomes a generic 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidStartDate   = errors.New("invalid trip start date")
	ErrInvalidEndDate     = errors.New("invalid trip end date")
	ErrActivityOutOfRange = errors.New("invalid activity date")
)
