package footprint

import "errors"

// Errors returned by the engine. They are always wrapped with some context,
// use errors.Is to test for them.
var (
	// ErrShapeMismatch is returned when a Leontief inverse is not square, or
	// when its sector universe does not match the one of an intensity table.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrKeyMismatch is returned by strict lookups of a sector key that is not
	// part of a table.
	ErrKeyMismatch = errors.New("key mismatch")

	// ErrUnknownCounterparty is returned when an exposure references a
	// counterparty that has no attributes.
	ErrUnknownCounterparty = errors.New("unknown counterparty")

	// ErrDuplicateKey is returned when a sector key, or a column, appears twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidValue is returned for negative or NaN intensities.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidExposure is returned for exposures with a negative amount.
	ErrInvalidExposure = errors.New("invalid exposure")

	// ErrCurrencyMismatch is returned when amounts in different currencies
	// would be added up.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
