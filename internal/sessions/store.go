// Package sessions - сессии бронирования: у каждого клиента свой заказ,
// свой поиск мастеров и своя подгрузка товаров.
package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/order"
	"github.com/denmor86/ya-beautystudio/internal/search"
	"github.com/denmor86/ya-beautystudio/internal/services"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("booking session not found")

// Session - одна сессия бронирования
type Session struct {
	ID       string
	Order    *order.Order
	Staff    *services.StaffLookup
	Products *search.Loader[models.Product]

	mu          sync.Mutex
	lastSeen    time.Time
	unsubscribe func()
}

// Touch - отметка активности
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

// LastSeen - время последней активности
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.Staff.Cancel()
}

// Store - сессии в памяти процесса
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	availability services.AvailabilityService
	fetch        search.Fetcher[models.Product]
	pageSize     int
	now          func() time.Time
}

// NewStore - создание хранилища сессий
func NewStore(availability services.AvailabilityService, fetch search.Fetcher[models.Product], pageSize int) *Store {
	return &Store{
		sessions:     make(map[string]*Session),
		availability: availability,
		fetch:        fetch,
		pageSize:     pageSize,
		now:          time.Now,
	}
}

// Create - новая сессия с пустым заказом
func (st *Store) Create() *Session {
	session := &Session{
		ID:       uuid.NewString(),
		Order:    order.New(),
		Staff:    services.NewStaffLookup(st.availability),
		Products: search.NewLoader(st.fetch, st.pageSize),
		lastSeen: st.now(),
	}
	// любое изменение заказа продлевает жизнь сессии
	session.unsubscribe = session.Order.Subscribe(func(order.Snapshot) {
		session.Touch(st.now())
	})

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	logger.Debug("Booking session created", session.ID)
	return session
}

// Get - сессия по id, с отметкой активности
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.Touch(st.now())
	return session, nil
}

// Delete - закрытие сессии
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	session, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	session.close()
	logger.Debug("Booking session deleted", id)
	return nil
}

// Sweep - удаление сессий, неактивных дольше ttl. Возвращает количество удалённых.
func (st *Store) Sweep(ttl time.Duration) int {
	deadline := st.now().Add(-ttl)

	st.mu.Lock()
	var expired []*Session
	for id, session := range st.sessions {
		if session.LastSeen().Before(deadline) {
			expired = append(expired, session)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, session := range expired {
		session.close()
	}
	if len(expired) > 0 {
		logger.Info("Expired booking sessions removed", len(expired))
	}
	return len(expired)
}

// Len - количество активных сессий
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
