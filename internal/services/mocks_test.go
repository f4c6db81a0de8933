package services

import (
	"encoding/json"
	"errors"
	"time"

	"colis_express/internal/models"
	"colis_express/internal/redis"
	"colis_express/internal/repository"

	"gorm.io/gorm"
)

var (
	errTrackingCacheMiss = errors.New("tracking data not cached")
	errSessionMiss       = errors.New("session not in store")
)

// mockShipmentRepo simulates the shipments table.
type mockShipmentRepo struct {
	shipments []*models.Shipment
	nextID    uint

	errCreate       error
	errCreateOnce   []error // consumed one per Create call before errCreate
	errGet          error
	errUpdateStatus error
	errMarkPaid     error

	createdNumbers []string
}

func (m *mockShipmentRepo) Create(shipment *models.Shipment) error {
	m.createdNumbers = append(m.createdNumbers, shipment.TrackingNumber)
	if len(m.errCreateOnce) > 0 {
		err := m.errCreateOnce[0]
		m.errCreateOnce = m.errCreateOnce[1:]
		if err != nil {
			return err
		}
	} else if m.errCreate != nil {
		return m.errCreate
	}
	m.nextID++
	shipment.ID = m.nextID
	if shipment.CreatedAt.IsZero() {
		shipment.CreatedAt = time.Now()
	}
	m.shipments = append(m.shipments, shipment)
	return nil
}

func (m *mockShipmentRepo) GetByID(id uint) (*models.Shipment, error) {
	if m.errGet != nil {
		return nil, m.errGet
	}
	for _, s := range m.shipments {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShipmentRepo) GetByTrackingNumber(number string) (*models.Shipment, error) {
	if m.errGet != nil {
		return nil, m.errGet
	}
	for _, s := range m.shipments {
		if s.TrackingNumber == number {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShipmentRepo) GetByUserID(userID uint) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, s := range m.shipments {
		if s.UserID != nil && *s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockShipmentRepo) GetAll(filter repository.ShipmentFilter) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, s := range m.shipments {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockShipmentRepo) UpdateStatus(id uint, status string) error {
	if m.errUpdateStatus != nil {
		return m.errUpdateStatus
	}
	for _, s := range m.shipments {
		if s.ID == id {
			s.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockShipmentRepo) MarkPaid(id uint, method string) error {
	if m.errMarkPaid != nil {
		return m.errMarkPaid
	}
	for _, s := range m.shipments {
		if s.ID == id {
			s.Paid = true
			s.PaymentMethod = method
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// mockUserRepo simulates the users table.
type mockUserRepo struct {
	users  []*models.User
	nextID uint
}

func (m *mockUserRepo) Create(user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// mockSessionStore keeps sessions in a map.
type mockSessionStore struct {
	sessions map[string]*redis.SessionData
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*redis.SessionData{}}
}

func (m *mockSessionStore) SetSession(token string, data *redis.SessionData, ttl time.Duration) error {
	m.sessions[token] = data
	return nil
}

func (m *mockSessionStore) GetSession(token string) (*redis.SessionData, error) {
	if session, ok := m.sessions[token]; ok {
		return session, nil
	}
	return nil, errSessionMiss
}

func (m *mockSessionStore) DeleteSession(token string) error {
	delete(m.sessions, token)
	return nil
}

// mockTrackingCache records cache traffic; Get always misses unless primed.
type mockTrackingCache struct {
	entries     map[string][]byte
	invalidated []string
	sets        int
	hits        int
}

func newMockTrackingCache() *mockTrackingCache {
	return &mockTrackingCache{entries: map[string][]byte{}}
}

func (m *mockTrackingCache) SetTrackedShipment(number string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[number] = data
	m.sets++
	return nil
}

func (m *mockTrackingCache) GetTrackedShipment(number string, dest interface{}) error {
	data, ok := m.entries[number]
	if !ok {
		return errTrackingCacheMiss
	}
	m.hits++
	return json.Unmarshal(data, dest)
}

func (m *mockTrackingCache) InvalidateTrackedShipment(number string) error {
	delete(m.entries, number)
	m.invalidated = append(m.invalidated, number)
	return nil
}
