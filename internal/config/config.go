package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"secret"`
	GeoAddr        string        `env:"GEO_SERVICE_ADDRESS" envDefault:"http://ip-api.com"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval  time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	PageSize       int           `env:"PAGE_SIZE" envDefault:"12"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr     string
	LogLevel       string
	JWTSecret      string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// BookingConfig модель настроек сессий бронирования
type BookingConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
	PageSize      int
}

// GeoConfig модель настроек сервиса геолокации по IP (request_info в счёте)
type GeoConfig struct {
	GeoAddr string
	Timeout time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Booking BookingConfig
	Geo     GeoConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to verify admin JWT")
		geo      = pflag.StringP("geo", "g", args.GeoAddr, "IP geolocation service address.")
		ttl      = pflag.DurationP("session_ttl", "t", args.SessionTTL, "Idle booking session lifetime.")
		sweep    = pflag.Duration("sweep_interval", args.SweepInterval, "Booking session sweep interval.")
		pageSize = pflag.IntP("page_size", "p", args.PageSize, "Catalog page size.")
		timeout  = pflag.Duration("request_timeout", args.RequestTimeout, "Storage request timeout.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:     *server,
			LogLevel:       *logLevel,
			DatabaseDSN:    *DSN,
			JWTSecret:      *secret,
			RequestTimeout: *timeout,
		},
		Booking: BookingConfig{
			SessionTTL:    *ttl,
			SweepInterval: *sweep,
			PageSize:      *pageSize,
		},
		Geo: GeoConfig{
			GeoAddr: *geo,
			Timeout: 5 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:     "localhost:8080",
			LogLevel:       "info",
			DatabaseDSN:    "",
			JWTSecret:      "secret",
			RequestTimeout: 10 * time.Second,
		},
		Booking: BookingConfig{
			SessionTTL:    30 * time.Minute,
			SweepInterval: time.Minute,
			PageSize:      12,
		},
		Geo: GeoConfig{
			GeoAddr: "http://ip-api.com",
			Timeout: 5 * time.Second,
		},
	}
}
