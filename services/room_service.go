package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/diteix/hotel-cancun/models"
	"github.com/diteix/hotel-cancun/repository"
	"github.com/diteix/hotel-cancun/utils"
)

// RoomService orchestrates room lookups and reservation creation:
// fetch the room with its reservations, run the booking rules, and only
// then persist. The per-room lock keeps concurrent booking attempts for the
// same room from validating against a stale reservation set.
type RoomService struct {
	rooms repository.RoomRepository
	locks *utils.KeyedMutex
	now   func() time.Time
}

func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{
		rooms: rooms,
		locks: utils.NewKeyedMutex(),
		now:   time.Now,
	}
}

func (s *RoomService) ListRooms() ([]models.Room, error) {
	return s.rooms.FindAll()
}

func (s *RoomService) GetRoomWithReservations(roomID uint) (models.Validation[models.Room], error) {
	room, err := s.rooms.FindWithReservations(roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invalid[models.Room](msgRoomNotFound), nil
	}
	if err != nil {
		return models.Validation[models.Room]{}, fmt.Errorf("fetch room %d: %w", roomID, err)
	}
	return models.ValidValue(room), nil
}

func (s *RoomService) AddReservation(roomID, clientID uint, from, to time.Time) (models.Validation[models.Reservation], error) {
	unlock := s.locks.Lock(roomKey(roomID))
	defer unlock()

	room, err := s.rooms.FindWithReservations(roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invalid[models.Reservation](msgRoomNotFound), nil
	}
	if err != nil {
		return models.Validation[models.Reservation]{}, fmt.Errorf("fetch room %d: %w", roomID, err)
	}

	candidate := models.Reservation{
		From:   from,
		To:     to,
		RoomID: roomID,
	}

	validation := ValidateReservation(room.Reservations, candidate, s.now())
	if !validation.IsValid {
		return validation, nil
	}

	if err := s.rooms.AppendReservation(roomID, clientID, from, to); err != nil {
		return models.Validation[models.Reservation]{}, fmt.Errorf("append reservation to room %d: %w", roomID, err)
	}

	return validation, nil
}

func roomKey(roomID uint) string {
	return fmt.Sprintf("room:%d", roomID)
}
