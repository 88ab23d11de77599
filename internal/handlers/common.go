package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatwise/internal/booking"
	"seatwise/internal/helpers"
	"seatwise/internal/payment"
)

func getDB(c *gin.Context) (*gorm.DB, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return db.(*gorm.DB), true
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID in token.")
		return uuid.Nil, false
	}
	return id, true
}

// bookingErrorStatus maps booking-core and payment errors to HTTP statuses
// and a client-facing message. Conflicts get a dedicated 409 so clients know
// to refetch seat availability and resubmit rather than show a generic
// failure.
func bookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrUserNotFound),
		errors.Is(err, booking.ErrEventNotFound),
		errors.Is(err, booking.ErrOrderNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, booking.ErrNoSeatsRequested),
		errors.Is(err, booking.ErrDuplicateSeats),
		errors.Is(err, booking.ErrSeatNotFound),
		errors.Is(err, booking.ErrTicketInvalid),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrInvalidCard):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, payment.ErrCardDeclined):
		return http.StatusPaymentRequired, err.Error()
	case errors.Is(err, booking.ErrForeignOrder):
		return http.StatusForbidden, err.Error()
	case booking.IsConflict(err):
		return http.StatusConflict, err.Error()
	case errors.Is(err, booking.ErrEventNotUpcoming),
		errors.Is(err, booking.ErrSeatLimitExceeded),
		errors.Is(err, booking.ErrAlreadyRefunded),
		errors.Is(err, booking.ErrRefundWindowClosed):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "Unexpected error."
	}
}

func respondBookingError(c *gin.Context, err error) {
	status, message := bookingErrorStatus(err)
	helpers.RespondWithError(c, status, message)
}
