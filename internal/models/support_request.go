package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportRequestStatus string

const (
	SupportPending   SupportRequestStatus = "pending"
	SupportProcessed SupportRequestStatus = "processed"
	SupportRejected  SupportRequestStatus = "rejected"
)

func ValidSupportRequestStatus(status SupportRequestStatus) bool {
	switch status {
	case SupportPending, SupportProcessed, SupportRejected:
		return true
	}
	return false
}

// SupportRequest is the append-only audit trail of refund attempts. A row is
// written as pending before eligibility is evaluated, then its status and
// resolution note are updated with the outcome. Rows are never deleted.
type SupportRequest struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	OrderID        *uuid.UUID `gorm:"type:uuid;index"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReviewNote     string
	Status         SupportRequestStatus `gorm:"not null;default:'pending'"`
	ResolutionNote string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (request *SupportRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	return
}
