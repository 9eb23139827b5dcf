package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/order"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidServiceID = errors.New("service id must be positive")
	ErrStaleResponse    = errors.New("staff lookup superseded by a newer request")
)

type AvailabilityService interface {
	GetAvailableStaff(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error)
}

type Availability struct {
	Storage storage.StaffStorage
}

// Создание сервиса
func NewAvailability(storage storage.StaffStorage) AvailabilityService {
	return &Availability{Storage: storage}
}

// GetAvailableStaff - мастера на услугу в указанный день. Время суток не учитывается.
func (s *Availability) GetAvailableStaff(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error) {
	if serviceID <= 0 {
		return nil, ErrInvalidServiceID
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	staff, err := s.Storage.GetAvailableStaff(ctx, serviceID, day)
	if err != nil {
		logger.Errorw("Failed to get available staff", zap.Int64("service", serviceID), zap.Error(err))
		return nil, err
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	return staff, nil
}

// Состояния поиска мастеров
const (
	StaffStatusIdle    = "idle"
	StaffStatusLoading = "loading"
	StaffStatusReady   = "ready"
	StaffStatusEmpty   = "empty"
	StaffStatusError   = "error"
)

// StaffState - последний актуальный результат поиска мастеров
type StaffState struct {
	Status    string         `json:"status"`
	ServiceID int64          `json:"service_id,omitempty"`
	Date      string         `json:"date,omitempty"`
	Staff     []models.Staff `json:"staff"`
	Error     string         `json:"error,omitempty"`
}

// StaffLookup - поиск мастеров для одной сессии. Каждый запрос получает новое поколение
// и отменяет предыдущий; ответ устаревшего поколения отбрасывается.
type StaffLookup struct {
	mu           sync.Mutex
	availability AvailabilityService
	generation   uint64
	cancel       context.CancelFunc
	state        StaffState
}

func NewStaffLookup(availability AvailabilityService) *StaffLookup {
	return &StaffLookup{
		availability: availability,
		state:        StaffState{Status: StaffStatusIdle, Staff: []models.Staff{}},
	}
}

// Fetch - новый запрос мастеров. Пустой список - состояние empty, не ошибка.
// Ошибка источника возвращается вместе с состоянием error; повтор - на стороне клиента.
func (l *StaffLookup) Fetch(ctx context.Context, serviceID int64, date time.Time) (StaffState, error) {
	if serviceID <= 0 {
		return l.State(), ErrInvalidServiceID
	}
	day := date.Format(order.DateLayout)

	l.mu.Lock()
	l.generation++
	generation := l.generation
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = StaffState{Status: StaffStatusLoading, ServiceID: serviceID, Date: day, Staff: []models.Staff{}}
	l.mu.Unlock()
	defer cancel()

	staff, err := l.availability.GetAvailableStaff(ctx, serviceID, date)

	l.mu.Lock()
	defer l.mu.Unlock()
	if generation != l.generation {
		logger.Debug("Discard stale staff response", serviceID, day)
		return l.state, ErrStaleResponse
	}
	l.cancel = nil

	state := StaffState{ServiceID: serviceID, Date: day, Staff: []models.Staff{}}
	switch {
	case err != nil:
		state.Status = StaffStatusError
		state.Error = err.Error()
	case len(staff) == 0:
		state.Status = StaffStatusEmpty
	default:
		state.Status = StaffStatusReady
		state.Staff = staff
	}
	l.state = state
	return state, err
}

// State - последнее состояние без нового запроса
func (l *StaffLookup) State() StaffState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Cancel - отмена запроса в полёте (сессия закрыта)
func (l *StaffLookup) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
