package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatwise/internal/booking"
	"seatwise/internal/helpers"
)

type RefundRequest struct {
	ReviewNote string `json:"review_note"`
}

// RefundOrder asks for a refund of one of the caller's orders. Whatever the
// outcome, a support request row records the attempt; rejections carry the
// reason both in the response body and in the row's resolution note.
func RefundOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format.")
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
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

	request, err := booking.NewService(gormDB).Refund(c.Request.Context(), orderID, userID, req.ReviewNote)
	if err != nil {
		status, message := bookingErrorStatus(err)
		if request == nil {
			helpers.RespondWithError(c, status, message)
			return
		}
		c.JSON(status, gin.H{
			"error":           http.StatusText(status),
			"message":         message,
			"support_request": request,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Refund processed.",
		"support_request": request,
	})
}
