package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diteix/hotel-cancun/models"
	"github.com/diteix/hotel-cancun/repository"
	"github.com/diteix/hotel-cancun/utils"
)

// ClientService orchestrates client lookups, reservation cancellation and
// reservation modification. Mutations are serialized per client id so a
// modify cannot race a concurrent cancel or another modify.
type ClientService struct {
	clients repository.ClientRepository
	locks   *utils.KeyedMutex
	now     func() time.Time
}

func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{
		clients: clients,
		locks:   utils.NewKeyedMutex(),
		now:     time.Now,
	}
}

// RegisterClient creates a client with a bcrypt-hashed password. A duplicate
// username surfaces as the repository's duplicate-entry error.
func (s *ClientService) RegisterClient(username, password string) (models.Client, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Client{}, fmt.Errorf("hash password: %w", err)
	}

	client := models.Client{
		Username: username,
		Password: string(hash),
	}
	if err := s.clients.Create(&client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (s *ClientService) GetClient(clientID uint) (models.Validation[models.Client], error) {
	client, err := s.clients.Find(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invalid[models.Client](msgClientNotFound), nil
	}
	if err != nil {
		return models.Validation[models.Client]{}, fmt.Errorf("fetch client %d: %w", clientID, err)
	}
	return models.ValidValue(client), nil
}

func (s *ClientService) ListReservations(clientID uint) (models.Validation[[]models.Reservation], error) {
	client, err := s.clients.FindWithReservations(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invalid[[]models.Reservation](msgClientNotFound), nil
	}
	if err != nil {
		return models.Validation[[]models.Reservation]{}, fmt.Errorf("fetch client %d: %w", clientID, err)
	}

	reservations := client.Reservations
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return models.ValidValue(reservations), nil
}

// CancelReservation deletes the reservation once located; no booking rule
// applies to cancellation.
func (s *ClientService) CancelReservation(clientID, reservationID uint) (models.Validation[any], error) {
	unlock := s.locks.Lock(clientKey(clientID))
	defer unlock()

	client, err := s.clients.FindWithReservations(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invalid[any](msgClientNotFound), nil
	}
	if err != nil {
		return models.Validation[any]{}, fmt.Errorf("fetch client %d: %w", clientID, err)
	}

	if locateReservation(client.Reservations, reservationID) == nil {
		return models.Invalid[any](msgReservationNotFound), nil
	}

	if err := s.clients.DeleteReservation(clientID, reservationID); err != nil {
		return models.Validation[any]{}, fmt.Errorf("delete reservation %d: %w", reservationID, err)
	}

	return models.Valid[any](), nil
}

// ModifyReservation revalidates the reservation with its new dates against
// the client's other reservations; the interval being modified is excluded
// so a no-op date change does not collide with itself.
func (s *ClientService) ModifyReservation(clientID, reservationID uint, from, to time.Time) (models.Validation[models.Reservation], error) {
	unlock := s.locks.Lock(clientKey(clientID))
	defer unlock()

	client, err := s.clients.FindWithReservations(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invalid[models.Reservation](msgClientNotFound), nil
	}
	if err != nil {
		return models.Validation[models.Reservation]{}, fmt.Errorf("fetch client %d: %w", clientID, err)
	}

	current := locateReservation(client.Reservations, reservationID)
	if current == nil {
		return models.Invalid[models.Reservation](msgReservationNotFound), nil
	}

	others := make([]models.Reservation, 0, len(client.Reservations)-1)
	for _, reservation := range client.Reservations {
		if reservation.ID != reservationID {
			others = append(others, reservation)
		}
	}

	candidate := models.Reservation{
		ID:       reservationID,
		From:     from,
		To:       to,
		RoomID:   current.RoomID,
		ClientID: clientID,
	}

	validation := ValidateReservation(others, candidate, s.now())
	if !validation.IsValid {
		return validation, nil
	}

	if err := s.clients.UpdateReservationDates(clientID, reservationID, from, to); err != nil {
		return models.Validation[models.Reservation]{}, fmt.Errorf("update reservation %d: %w", reservationID, err)
	}

	return validation, nil
}

func locateReservation(reservations []models.Reservation, reservationID uint) *models.Reservation {
	for i := range reservations {
		if reservations[i].ID == reservationID {
			return &reservations[i]
		}
	}
	return nil
}

func clientKey(clientID uint) string {
	return fmt.Sprintf("client:%d", clientID)
}
