package commands

import (
	"foody/internal/infra"
	"foody/internal/pkg/errs"
)

var (
	ErrOfferNotFound           = errs.ErrOfferNotFound
	ErrOfferUnavailable        = errs.ErrOfferUnavailable
	ErrSoldOut                 = errs.ErrSoldOut
	ErrReservationNotFound     = errs.ErrReservationNotFound
	ErrCodeMismatch            = errs.ErrCodeMismatch
	ErrReservationExpired      = errs.ErrReservationExpired
	ErrCodeGenerationExhausted = errs.ErrCodeGenerationExhausted
	ErrRestaurantNotFound      = errs.ErrRestaurantNotFound
	ErrUnauthorized            = errs.ErrUnauthorized
	ErrIdempotencyKeyReused    = errs.ErrIdempotencyKeyReused
	ErrIdempotencyInProgress   = errs.ErrIdempotencyInProgress
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
	ErrInvalidTicket           = errs.New("invalid redemption ticket")
	ErrMissingRedemptionRef    = errs.New("reservation id, code or ticket is required")
)

// markStorage tags unexpected storage failures so handlers can report them
// as internal errors while keeping the original cause for logs.
func markStorage(err error) error {
	if infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return err
}
