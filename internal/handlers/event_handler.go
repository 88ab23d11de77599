package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatwise/internal/helpers"
	"seatwise/internal/models"
)

const seatInsertBatchSize = 500

type EventRequest struct {
	VenueID           uuid.UUID `json:"venue_id" binding:"required"`
	Name              string    `json:"name" binding:"required"`
	Category          string    `json:"category" binding:"required"`
	EventDate         time.Time `json:"event_date" binding:"required"`
	TicketPrice       int       `json:"ticket_price" binding:"required,min=1"`
	MaxTicketsPerUser int       `json:"max_tickets_per_user" binding:"required,min=1"`
}

type EventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateEvent onboards an event and auto-generates one seat per unit of the
// venue's capacity, labelled S1..Sn, in a single transaction.
func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var venue models.Venue
	if err := gormDB.Where("id = ?", req.VenueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	event := models.Event{
		ID:                uuid.New(),
		Name:              req.Name,
		Category:          req.Category,
		EventDate:         req.EventDate,
		TicketPrice:       req.TicketPrice,
		MaxTicketsPerUser: req.MaxTicketsPerUser,
		Status:            models.EventUpcoming,
		VenueID:           venue.ID,
	}

	seats := make([]models.Seat, 0, venue.TotalCapacity)
	for i := 1; i <= venue.TotalCapacity; i++ {
		seats = append(seats, models.Seat{
			ID:      uuid.New(),
			Label:   fmt.Sprintf("S%d", i),
			Status:  models.SeatAvailable,
			EventID: event.ID,
			VenueID: venue.ID,
		})
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(seats, seatInsertBatchSize).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
		"seats":    len(seats),
	})
}

// UpdateEventStatus moves an event between upcoming, closed and cancelled.
// Booking is only permitted while the event is upcoming.
func UpdateEventStatus(c *gin.Context) {
	eventID := c.Param("id")

	var req EventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	status := models.EventStatus(req.Status)
	if !models.ValidEventStatus(status) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Status must be upcoming, closed or cancelled.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	result := gormDB.Model(&models.Event{}).Where("id = ?", eventID).Update("status", status)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event status.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event status updated successfully.",
		"status":  status,
	})
}

func ListUpcomingEvents(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var events []models.Event
	err := gormDB.Preload("Venue").
		Where("status = ?", models.EventUpcoming).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var event models.Event
	if err := gormDB.Preload("Venue").Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}
