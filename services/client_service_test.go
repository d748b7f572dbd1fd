package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diteix/hotel-cancun/models"
)

type updateCall struct {
	clientID      uint
	reservationID uint
	from          time.Time
	to            time.Time
}

type fakeClientRepo struct {
	clients   map[uint]models.Client
	findErr   error
	createErr error
	created   []models.Client
	deletes   []uint
	updates   []updateCall
}

func (f *fakeClientRepo) Create(client *models.Client) error {
	if f.createErr != nil {
		return f.createErr
	}
	client.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *client)
	return nil
}

func (f *fakeClientRepo) Find(clientID uint) (models.Client, error) {
	return f.FindWithReservations(clientID)
}

func (f *fakeClientRepo) FindWithReservations(clientID uint) (models.Client, error) {
	if f.findErr != nil {
		return models.Client{}, f.findErr
	}
	client, ok := f.clients[clientID]
	if !ok {
		return models.Client{}, gorm.ErrRecordNotFound
	}
	return client, nil
}

func (f *fakeClientRepo) DeleteReservation(clientID, reservationID uint) error {
	f.deletes = append(f.deletes, reservationID)
	return nil
}

func (f *fakeClientRepo) UpdateReservationDates(clientID, reservationID uint, from, to time.Time) error {
	f.updates = append(f.updates, updateCall{clientID: clientID, reservationID: reservationID, from: from, to: to})
	return nil
}

func newClientServiceForTest(repo *fakeClientRepo) *ClientService {
	svc := NewClientService(repo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func clientWith(reservations ...models.Reservation) map[uint]models.Client {
	return map[uint]models.Client{
		1: {ID: 1, Username: "guest", Reservations: reservations},
	}
}

func TestClientServiceRegisterClient(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := newClientServiceForTest(repo)

	client, err := svc.RegisterClient("guest", "secret-password")

	require.NoError(t, err)
	assert.Equal(t, "guest", client.Username)
	assert.NotEqual(t, "secret-password", client.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(client.Password), []byte("secret-password")))
	require.Len(t, repo.created, 1)
}

func TestClientServiceGetClient(t *testing.T) {
	repo := &fakeClientRepo{clients: clientWith()}
	svc := newClientServiceForTest(repo)

	found, err := svc.GetClient(1)
	require.NoError(t, err)
	require.True(t, found.IsValid)
	assert.Equal(t, "guest", found.Value.Username)

	missing, err := svc.GetClient(2)
	require.NoError(t, err)
	assert.False(t, missing.IsValid)
	assert.Equal(t, []string{msgClientNotFound}, missing.ValidationMessages)
	assert.Nil(t, missing.Value)
}

func TestClientServiceListReservations(t *testing.T) {
	repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
	svc := newClientServiceForTest(repo)

	result, err := svc.ListReservations(1)
	require.NoError(t, err)
	require.True(t, result.IsValid)
	require.NotNil(t, result.Value)
	assert.Len(t, *result.Value, 1)

	missing, err := svc.ListReservations(9)
	require.NoError(t, err)
	assert.Equal(t, []string{msgClientNotFound}, missing.ValidationMessages)
}

func TestClientServiceListReservationsEmpty(t *testing.T) {
	repo := &fakeClientRepo{clients: clientWith()}
	svc := newClientServiceForTest(repo)

	result, err := svc.ListReservations(1)

	require.NoError(t, err)
	require.NotNil(t, result.Value)
	assert.Empty(t, *result.Value)
}

func TestClientServiceCancelReservation(t *testing.T) {
	t.Run("unknown client", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
		svc := newClientServiceForTest(repo)

		result, err := svc.CancelReservation(42, 7)

		require.NoError(t, err)
		assert.Equal(t, []string{msgClientNotFound}, result.ValidationMessages)
		assert.Empty(t, repo.deletes)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
		svc := newClientServiceForTest(repo)

		result, err := svc.CancelReservation(1, 99)

		require.NoError(t, err)
		assert.Equal(t, []string{msgReservationNotFound}, result.ValidationMessages)
		assert.Empty(t, repo.deletes)
	})

	t.Run("located reservation is deleted", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
		svc := newClientServiceForTest(repo)

		result, err := svc.CancelReservation(1, 7)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, []uint{7}, repo.deletes)
	})
}

func TestClientServiceModifyReservation(t *testing.T) {
	t.Run("keeping the same dates does not collide with itself", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
		svc := newClientServiceForTest(repo)

		result, err := svc.ModifyReservation(1, 7, day(5), day(7))

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		require.Len(t, repo.updates, 1)
		assert.Equal(t, updateCall{clientID: 1, reservationID: 7, from: day(5), to: day(7)}, repo.updates[0])
	})

	t.Run("new dates colliding with another reservation are rejected", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(
			stay(7, day(5), day(7)),
			stay(8, day(10), day(12)),
		)}
		svc := newClientServiceForTest(repo)

		result, err := svc.ModifyReservation(1, 7, day(12), day(13))

		require.NoError(t, err)
		require.False(t, result.IsValid)
		assert.Equal(t, []string{msgOverlap}, result.ValidationMessages)
		require.NotNil(t, result.Value)
		assert.Equal(t, uint(7), result.Value.ID)
		assert.Empty(t, repo.updates)
	})

	t.Run("rule violation keeps the stored dates", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
		svc := newClientServiceForTest(repo)

		result, err := svc.ModifyReservation(1, 7, day(5), day(15))

		require.NoError(t, err)
		assert.Equal(t, []string{msgMaxStay}, result.ValidationMessages)
		assert.Empty(t, repo.updates)
	})

	t.Run("unknown client and unknown reservation", func(t *testing.T) {
		repo := &fakeClientRepo{clients: clientWith(stay(7, day(5), day(7)))}
		svc := newClientServiceForTest(repo)

		missingClient, err := svc.ModifyReservation(42, 7, day(5), day(6))
		require.NoError(t, err)
		assert.Equal(t, []string{msgClientNotFound}, missingClient.ValidationMessages)

		missingReservation, err := svc.ModifyReservation(1, 99, day(5), day(6))
		require.NoError(t, err)
		assert.Equal(t, []string{msgReservationNotFound}, missingReservation.ValidationMessages)
		assert.Empty(t, repo.updates)
	})

	t.Run("storage failure propagates as an error", func(t *testing.T) {
		repo := &fakeClientRepo{findErr: errors.New("connection reset")}
		svc := newClientServiceForTest(repo)

		_, err := svc.ModifyReservation(1, 7, day(5), day(6))

		require.Error(t, err)
	})
}
