package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type LocationResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	Timezone   string  `json:"timezone"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Query      string  `json:"query"`
}

// String - "город, регион, страна"
func (l LocationResponse) String() string {
	return fmt.Sprintf("%s, %s, %s", l.City, l.RegionName, l.Country)
}

type GeoService interface {
	Locate(ctx context.Context, ip string) (string, error)
}

var (
	ErrServiceUnavailable = errors.New("geo service unavailable")
	ErrPrivateAddress     = errors.New("private or empty address")
)

type LookupError struct {
	Message string
}

func (e *LookupError) Error() string {
	return "geo lookup failed: " + e.Message
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
