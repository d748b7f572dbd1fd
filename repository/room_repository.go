package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/diteix/hotel-cancun/models"
)

type GormRoomRepository struct {
	DB *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{DB: db}
}

func (r *GormRoomRepository) FindAll() ([]models.Room, error) {
	var rooms []models.Room
	err := r.DB.Find(&rooms).Error
	return rooms, err
}

func (r *GormRoomRepository) FindWithReservations(roomID uint) (models.Room, error) {
	var room models.Room
	err := r.DB.Preload("Reservations").First(&room, roomID).Error
	return room, err
}

func (r *GormRoomRepository) AppendReservation(roomID, clientID uint, from, to time.Time) error {
	reservation := models.Reservation{
		RoomID:   roomID,
		ClientID: clientID,
		From:     from,
		To:       to,
	}
	return r.DB.Create(&reservation).Error
}
