package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/client"
	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/mssola/useragent"
)

// Типы устройств
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceBot     = "bot"
)

// RequestInfoCollector - сведения о клиенте для снимка заказа
type RequestInfoCollector struct {
	Geo client.GeoService
	Now func() time.Time
}

func NewRequestInfoCollector(geo client.GeoService) *RequestInfoCollector {
	return &RequestInfoCollector{Geo: geo, Now: time.Now}
}

// Collect - разбор User-Agent и геолокация по IP. Ошибки не возвращаются:
// неизвестные поля остаются пустыми, location - Unknown.
func (c *RequestInfoCollector) Collect(ctx context.Context, ip, userAgent string) models.RequestInfo {
	info := models.RequestInfo{
		IP:        ip,
		UserAgent: userAgent,
		Location:  UnknownLocation,
		Timestamp: c.Now().UTC(),
	}

	if userAgent != "" {
		ua := useragent.New(userAgent)
		browser, version := ua.Browser()
		if version != "" {
			browser += " " + version
		}
		info.Browser = browser
		info.OS = ua.OS()
		switch {
		case ua.Bot():
			info.Device = DeviceBot
		case ua.Mobile():
			info.Device = DeviceMobile
		default:
			info.Device = DeviceDesktop
		}
	}

	if c.Geo == nil {
		return info
	}
	location, err := c.Geo.Locate(ctx, ip)
	if err != nil {
		if !errors.Is(err, client.ErrPrivateAddress) {
			logger.Warn("Failed to locate client", ip, err)
		}
		return info
	}
	if location != "" {
		info.Location = location
	}
	return info
}
