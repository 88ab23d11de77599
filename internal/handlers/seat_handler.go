package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatwise/internal/booking"
	"seatwise/internal/helpers"
)

// ListAvailableSeats returns the open seats for an event, ordered by label.
// An event with nothing left simply returns an empty list.
func ListAvailableSeats(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	seats, err := booking.NewService(gormDB).AvailableSeats(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving seats.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"seats": seats})
}
