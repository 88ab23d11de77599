// Package booking implements the concurrency-sensitive core of the
// platform: seat inventory reads, the atomic booking transaction, ticket
// issuance, the refund/release workflow and the gate check. Seat contention
// is arbitrated by Postgres row locks (FOR UPDATE NOWAIT), never by process
// state, so multiple instances can run against the same database.
package booking

import "errors"

// Sentinel errors returned by the service. Handlers translate them into
// HTTP statuses; everything under "conflict" is retryable by the client
// after refetching seat availability.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrEventNotUpcoming  = errors.New("booking allowed only for upcoming events")
	ErrNoSeatsRequested  = errors.New("at least one seat is required")
	ErrDuplicateSeats    = errors.New("duplicate seat in request")
	ErrSeatLimitExceeded = errors.New("seat count exceeds the per-user limit for this event")
	ErrSeatNotFound      = errors.New("seat does not exist for this event")

	// ErrSeatContended means another booking transaction currently holds a
	// lock on one of the requested seats. ErrSeatUnavailable means the seat
	// was already booked by the time we locked it. Both map to 409.
	ErrSeatContended   = errors.New("another booking is in progress for the requested seats")
	ErrSeatUnavailable = errors.New("seat no longer available")
	ErrCodeCollision   = errors.New("ticket code collision, please retry")

	ErrForeignOrder       = errors.New("order belongs to another user")
	ErrAlreadyRefunded    = errors.New("already refunded")
	ErrRefundWindowClosed = errors.New("refund window closed")

	ErrTicketInvalid = errors.New("ticket is invalid or already used")
)

// IsConflict reports whether err is one of the retryable contention
// failures.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSeatContended) ||
		errors.Is(err, ErrSeatUnavailable) ||
		errors.Is(err, ErrCodeCollision)
}
