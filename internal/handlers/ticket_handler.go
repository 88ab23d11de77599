package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"seatwise/internal/booking"
	"seatwise/internal/helpers"
	"seatwise/internal/models"
)

func generateQRCodeData(ticket *models.Ticket) string {
	secretKey := os.Getenv("JWT_SECRET")
	signature := generateSignature(ticket.Code, secretKey)
	return fmt.Sprintf("ticket:%s;signature:%s", ticket.Code, signature)
}

func generateSignature(code, secretKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}

type ValidateTicketRequest struct {
	TicketCode string `json:"ticket_code" binding:"required"`
}

// ValidateTicket is the gate check. Each code admits exactly once: the first
// call marks it used, every later call is rejected.
func ValidateTicket(c *gin.Context) {
	var req ValidateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	ticket, err := booking.NewService(gormDB).ValidateTicket(c.Request.Context(), req.TicketCode)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket accepted.",
		"ticket": gin.H{
			"id":       ticket.ID,
			"code":     ticket.Code,
			"order_id": ticket.OrderID,
			"seat_id":  ticket.SeatID,
		},
	})
}

// GenerateTicketQR renders a signed QR image for one of the caller's
// tickets.
func GenerateTicketQR(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var ticket models.Ticket
	if err := gormDB.
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("tickets.code = ?", c.Param("code")).
		Where("orders.user_id = ?", userID).
		First(&ticket).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
		return
	}

	if ticket.Used {
		helpers.RespondWithError(c, http.StatusForbidden, "Ticket already used.")
		return
	}

	qrImage, err := qrcode.Encode(generateQRCodeData(&ticket), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
