package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/config"
	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/network/router"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/denmor86/ya-beautystudio/internal/worker"
)

func Run(config config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// подключение к базе и миграции
	db, err := storage.NewDatabase(ctx, config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("error create database", err.Error())
	}
	defer db.Close()
	if err := db.Initialize(ctx); err != nil {
		logger.Panic("error initialize database", err.Error())
	}

	router := router.NewRouter(config, storage.NewStorage(db))

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// очистка неактивных сессий бронирования
	sweeper := worker.NewSessionSweeper(router.Sessions, config.Booking.SessionTTL, config.Booking.SweepInterval)
	sweeper.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config.Server.ListenAddr, config.Booking,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	sweeper.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
