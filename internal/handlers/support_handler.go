package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatwise/internal/helpers"
	"seatwise/internal/models"
)

// ListSupportRequests returns the refund audit trail, newest first. An
// optional ?status= query narrows to pending, processed or rejected, and
// ?limit= caps the result.
func ListSupportRequests(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	query := gormDB.Model(&models.SupportRequest{})
	if status := c.Query("status"); status != "" {
		if !models.ValidSupportRequestStatus(models.SupportRequestStatus(status)) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid status filter.")
			return
		}
		query = query.Where("status = ?", status)
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := helpers.StringToInt(raw)
		if err != nil || limit < 1 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
			return
		}
		query = query.Limit(limit)
	}

	var requests []models.SupportRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve support requests.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Support requests retrieved successfully.",
		"support_requests": requests,
	})
}
