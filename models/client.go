package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"column:username;uniqueIndex;type:varchar(100)" json:"username"`
	Password string `gorm:"column:password;type:varchar(100)" json:"-"`

	// Reservations the client holds across rooms; the authority for locating
	// a reservation to cancel or modify.
	Reservations []Reservation `gorm:"foreignKey:ClientID" json:"reservations,omitempty"`
}
