package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/client"
	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/sony/gobreaker"
)

// UnknownLocation - значение, если геолокацию определить не удалось
const UnknownLocation = "Unknown"

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "geo-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// ответ "адрес не найден" - сервис жив
			var lookupErr *client.LookupError
			return err == nil || errors.As(err, &lookupErr)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infof("Circuit Breaker '%s': %s -> %s", name, from, to)
		},
	})
}

// GeoLocator - определение города клиента по IP для request_info
type GeoLocator struct {
	Client  *client.Client
	Limiter *client.RateLimiter
	Breaker *gobreaker.CircuitBreaker
}

func NewGeoLocator(baseURL string, timeout time.Duration) client.GeoService {
	return NewGeoLocatorWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewGeoLocatorWithClient(baseURL string, httpClient client.HTTPClient) *GeoLocator {
	return &GeoLocator{
		Client:  client.NewClient(baseURL, httpClient),
		Limiter: client.NewRateLimiter(client.DefaultGeoLimit, client.DefaultGeoBurst),
		Breaker: InitCircuitBreaker(),
	}
}

// Locate - best effort: при любой проблеме возвращается ошибка, вызывающий подставляет UnknownLocation
func (s *GeoLocator) Locate(ctx context.Context, ip string) (string, error) {
	if !isPublicIP(ip) {
		return "", client.ErrPrivateAddress
	}
	if !s.Limiter.Allow() {
		return "", &client.RateLimitError{}
	}

	resp, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.Client.GetLocation(ctx, ip)
	})
	if err != nil {
		// проверка большого количества запросов
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to geo service, retry after", rateLimitErr.RetryAfter)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		return "", err
	}
	return resp.(*client.LocationResponse).String(), nil
}

func isPublicIP(value string) bool {
	ip := net.ParseIP(value)
	if ip == nil {
		return false
	}
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast())
}
