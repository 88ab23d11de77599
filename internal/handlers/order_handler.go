package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatwise/internal/helpers"
	"seatwise/internal/models"
)

// ListOrders returns the authenticated user's orders, newest first, with
// their tickets preloaded.
func ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := gormDB.
		Preload("Tickets").
		Where("user_id = ?", userID).
		Order("booking_time DESC").
		Find(&orders).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully.",
		"orders":  orders,
	})
}
