package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotConflict        = errors.New("slot is no longer available")
	ErrValidationFailed    = errors.New("validation failed")

	// Auth errors
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")

	// Pricing errors
	ErrInvalidPriceSettings = errors.New("invalid price settings")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
