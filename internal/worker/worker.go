package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/logger"
)

// Sweeper - хранилище, из которого удаляются просроченные сессии
type Sweeper interface {
	Sweep(ttl time.Duration) int
}

// SessionSweeper - фоновая очистка неактивных сессий бронирования
type SessionSweeper struct {
	Sessions      Sweeper
	WaitGroup     sync.WaitGroup
	QuitChan      chan struct{}
	TTL           time.Duration
	SweepInterval time.Duration
}

// NewSessionSweeper - конструктор воркера очистки
func NewSessionSweeper(sessions Sweeper, ttl, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		Sessions:      sessions,
		QuitChan:      make(chan struct{}),
		TTL:           ttl,
		SweepInterval: interval,
	}
}

// Start - запускает воркер в фоне
func (w *SessionSweeper) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *SessionSweeper) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *SessionSweeper) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SessionSweeper signal stop")
			return
		case <-ctx.Done():
			logger.Info("SessionSweeper context done")
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep - один проход очистки
func (w *SessionSweeper) Sweep() int {
	removed := w.Sessions.Sweep(w.TTL)
	if removed > 0 {
		logger.Debug("Sessions swept", removed)
	}
	return removed
}
