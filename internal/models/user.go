package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleOrganizer    UserRole = "organizer"
	RoleCustomer     UserRole = "customer"
	RoleEntryManager UserRole = "entry_manager"
	RoleSupport      UserRole = "support"
)

func ValidUserRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleOrganizer, RoleCustomer, RoleEntryManager, RoleSupport:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"not null"`
	Email    string    `gorm:"unique;not null"`
	Password string    `gorm:"not null" json:"-"`
	Role     UserRole  `gorm:"not null;default:'customer'"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}
