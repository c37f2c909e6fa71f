package models

import "errors"

// Domain errors returned by repositories and services. Handlers map these
// to HTTP status codes with errors.Is.
var (
	// ErrNotFound is returned when a product (or another record) does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateCurrencyTier is returned when a product's pricing contains
	// the same currency code more than once.
	ErrDuplicateCurrencyTier = errors.New("duplicate currency tier")

	// ErrInvariantViolation is returned when a product document fails schema
	// validation at the repository boundary (negative price, blank currency, ...).
	ErrInvariantViolation = errors.New("catalog invariant violation")

	// ErrCurrencyNotOffered is returned when a product exists but has no
	// pricing tier for the requested currency.
	ErrCurrencyNotOffered = errors.New("currency not offered")

	// ErrFaceValueNotOffered is returned when the requested denomination label
	// is not part of the resolved currency tier.
	ErrFaceValueNotOffered = errors.New("face value not offered")
)
