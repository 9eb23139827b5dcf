package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ip-api.com без ключа: 45 запросов в минуту
const (
	DefaultGeoLimit = rate.Limit(45.0 / 60.0)
	DefaultGeoBurst = 5
)

type RateLimiter struct {
	limiter *rate.Limiter
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
}

func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		limit:   limit,
		burst:   burst,
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// Allow - неблокирующая проверка: best effort запросы не ждут очереди
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

// BlockFor - запрет запросов на duration (после 429).
// При нулевом лимите rate.Limiter всё ещё пропускает burst событий, поэтому обнуляется и burst.
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	rl.limiter.SetLimit(0)
	rl.limiter.SetBurst(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		rl.limiter.SetLimit(rl.limit)
		rl.limiter.SetBurst(rl.burst)
		rl.mu.Unlock()
	})
}

func ParseRetryAfter(headers http.Header) time.Duration {
	// ip-api.com отдаёт X-Ttl вместо Retry-After
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		retryAfter = headers.Get("X-Ttl")
	}
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
