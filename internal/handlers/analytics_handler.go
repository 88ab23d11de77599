package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatwise/internal/helpers"
	"seatwise/internal/models"
)

// GetAnalytics reports platform totals: tickets currently held (issued and
// not voided by refund or gate use), confirmed revenue in cents, and refund
// outcomes.
func GetAnalytics(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var ticketsSold int64
	if err := gormDB.Model(&models.Ticket{}).
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("orders.status = ?", models.OrderConfirmed).
		Count(&ticketsSold).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to compute analytics.")
		return
	}

	var revenue struct {
		Total int64
	}
	if err := gormDB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ?", models.OrderConfirmed).
		Scan(&revenue).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to compute analytics.")
		return
	}

	var refundsProcessed, refundsRejected int64
	if err := gormDB.Model(&models.SupportRequest{}).
		Where("status = ?", models.SupportProcessed).
		Count(&refundsProcessed).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to compute analytics.")
		return
	}
	if err := gormDB.Model(&models.SupportRequest{}).
		Where("status = ?", models.SupportRejected).
		Count(&refundsRejected).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to compute analytics.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Analytics retrieved successfully.",
		"analytics": gin.H{
			"tickets_sold":      ticketsSold,
			"revenue":           revenue.Total,
			"refunds_processed": refundsProcessed,
			"refunds_rejected":  refundsRejected,
		},
	})
}
