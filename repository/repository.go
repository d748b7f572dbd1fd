package repository

import (
	"errors"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/diteix/hotel-cancun/models"
)

// RoomRepository is the storage contract the booking path depends on.
// Absent aggregates surface as gorm.ErrRecordNotFound.
type RoomRepository interface {
	FindAll() ([]models.Room, error)
	FindWithReservations(roomID uint) (models.Room, error)
	AppendReservation(roomID, clientID uint, from, to time.Time) error
}

// ClientRepository is the storage contract for client lookups and
// reservation cancellation/modification.
type ClientRepository interface {
	Create(client *models.Client) error
	Find(clientID uint) (models.Client, error)
	FindWithReservations(clientID uint) (models.Client, error)
	DeleteReservation(clientID, reservationID uint) error
	UpdateReservationDates(clientID, reservationID uint, from, to time.Time) error
}

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation
// (error 1062), e.g. a username collision on client registration.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
