package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatwise/internal/booking"
	"seatwise/internal/helpers"
)

type BookingRequest struct {
	EventID     string   `json:"event_id" binding:"required"`
	SeatIDs     []string `json:"seat_ids" binding:"required"`
	PaymentMode string   `json:"payment_mode"`
	CardNumber  string   `json:"card_number"`
}

// BookSeats reserves the requested seats for the authenticated user. On a
// 409 the client should refetch availability and resubmit; a failed booking
// never leaves seats partially reserved.
func BookSeats(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format.")
		return
	}
	seatIDs, err := helpers.ParseUUIDs(req.SeatIDs)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid seat ID format.")
		return
	}

	userID, ok := getUserID(c)
	if !ok {
		return
	}
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	result, err := booking.NewService(gormDB).Book(c.Request.Context(), userID, eventID, seatIDs, booking.Payment{
		Mode:       req.PaymentMode,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed.",
		"order": gin.H{
			"id":           result.Order.ID,
			"event_id":     result.Order.EventID,
			"user_id":      result.Order.UserID,
			"total_amount": result.Order.TotalAmount,
			"status":       result.Order.Status,
			"payment_mode": result.Order.PaymentMode,
			"booking_time": result.Order.BookingTime,
		},
		"ticket_codes": result.TicketCodes,
	})
}
