package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Number    string         `gorm:"column:number;uniqueIndex;type:varchar(50)" json:"number"`
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	// Reservations currently attached to the room; the authority for
	// overlap checks when booking this room.
	Reservations []Reservation `gorm:"foreignKey:RoomID" json:"reservations,omitempty"`
}
