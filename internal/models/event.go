package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventClosed    EventStatus = "closed"
	EventCancelled EventStatus = "cancelled"
)

func ValidEventStatus(status EventStatus) bool {
	switch status {
	case EventUpcoming, EventClosed, EventCancelled:
		return true
	}
	return false
}

type Event struct {
	gorm.Model
	ID                uuid.UUID   `gorm:"type:uuid;primary_key"`
	Name              string      `gorm:"not null"`
	Category          string      `gorm:"not null"`
	EventDate         time.Time   `gorm:"not null"`
	TicketPrice       int         `gorm:"not null"`
	MaxTicketsPerUser int         `gorm:"not null"`
	Status            EventStatus `gorm:"not null;default:'upcoming'"`
	VenueID           uuid.UUID   `gorm:"type:uuid;not null;index"`
	Venue             Venue
	Seats             []Seat
	Orders            []Order
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
