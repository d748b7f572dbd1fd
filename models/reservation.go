package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation is a booked (or proposed) stay. From/To are calendar dates;
// time of day carries no meaning.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	From     time.Time `gorm:"column:from_date" json:"from"`
	To       time.Time `gorm:"column:to_date" json:"to"`
	RoomID   uint      `gorm:"index;column:room_id" json:"roomId"`
	ClientID uint      `gorm:"index;column:client_id" json:"clientId"`
}
