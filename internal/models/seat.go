package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

// Seat is one bookable unit of venue capacity, scoped to a single event.
// Status only ever moves available->booked (booking) and booked->available
// (refund), always inside a transaction holding the row lock.
type Seat struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	Label     string     `gorm:"not null;uniqueIndex:idx_seats_event_label"`
	Status    SeatStatus `gorm:"not null;default:'available'"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_seats_event_label;index"`
	VenueID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (seat *Seat) BeforeCreate(tx *gorm.DB) (err error) {
	if seat.ID == uuid.Nil {
		seat.ID = uuid.New()
	}
	return
}
