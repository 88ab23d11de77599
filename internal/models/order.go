package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
)

// Order is a customer's purchase of one or more seats for one event.
// TotalAmount is in cents and always equals ticket price times seat count
// at booking time.
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	TotalAmount int         `gorm:"not null"`
	PaymentMode string      `gorm:"not null"`
	Status      OrderStatus `gorm:"not null;default:'pending'"`
	BookingTime time.Time   `gorm:"not null"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	User        User
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Event       Event
	Tickets     []Ticket
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (order *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return
}
