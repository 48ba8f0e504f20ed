package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Offer errors
	ErrOfferNotFound    = errors.New("offer not found")
	ErrOfferUnavailable = errors.New("offer unavailable")
	ErrSoldOut          = errors.New("offer sold out")

	// Reservation errors
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrCodeMismatch            = errors.New("redemption code mismatch")
	ErrReservationExpired      = errors.New("reservation expired")
	ErrCodeGenerationExhausted = errors.New("redemption code generation exhausted")

	// Restaurant errors
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrUnauthorized       = errors.New("unauthorized")

	// Idempotency errors
	ErrIdempotencyKeyReused  = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errors.New("idempotency in progress")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
