package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatwise/internal/helpers"
	"seatwise/internal/models"
)

type VenueRequest struct {
	Name          string `json:"name" binding:"required"`
	City          string `json:"city" binding:"required"`
	Address       string `json:"address" binding:"required"`
	TotalCapacity int    `json:"total_capacity" binding:"required,min=1"`
}

func CreateVenue(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	venue := models.Venue{
		ID:            uuid.New(),
		Name:          req.Name,
		City:          req.City,
		Address:       req.Address,
		TotalCapacity: req.TotalCapacity,
	}

	if err := gormDB.Create(&venue).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create venue.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Venue created successfully.",
		"venue_id": venue.ID,
	})
}

func ListVenues(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var venues []models.Venue
	if err := gormDB.Order("created_at DESC").Find(&venues).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues})
}
