package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/diteix/hotel-cancun/models"
)

type GormClientRepository struct {
	DB *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{DB: db}
}

func (r *GormClientRepository) Create(client *models.Client) error {
	return r.DB.Create(client).Error
}

func (r *GormClientRepository) Find(clientID uint) (models.Client, error) {
	var client models.Client
	err := r.DB.First(&client, clientID).Error
	return client, err
}

func (r *GormClientRepository) FindWithReservations(clientID uint) (models.Client, error) {
	var client models.Client
	err := r.DB.Preload("Reservations").First(&client, clientID).Error
	return client, err
}

func (r *GormClientRepository) DeleteReservation(clientID, reservationID uint) error {
	result := r.DB.Where("client_id = ?", clientID).Delete(&models.Reservation{}, reservationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormClientRepository) UpdateReservationDates(clientID, reservationID uint, from, to time.Time) error {
	// No RowsAffected check here: MySQL reports 0 affected rows when the new
	// dates equal the stored ones, and callers locate the reservation first.
	return r.DB.Model(&models.Reservation{}).
		Where("id = ? AND client_id = ?", reservationID, clientID).
		Updates(map[string]interface{}{"from_date": from, "to_date": to}).Error
}
