package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ticket is the per-seat admission credential tied to an order. Code is
// globally unique and indexed for gate lookups. Used flips false->true at
// the gate, or is forced true when the order is refunded (voiding the
// ticket).
type Ticket struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Code      string    `gorm:"not null;uniqueIndex"`
	Used      bool      `gorm:"not null;default:false"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Order     Order
	SeatID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Seat      Seat
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	return
}
