package service

import (
	"time"

	"github.com/MKhiriev/shareit/internal/config"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
)

type Services struct {
	UserService        UserService
	ItemService        ItemService
	BookingService     BookingService
	ItemRequestService ItemRequestService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:        NewUserService(storages, logger),
		ItemService:        NewItemService(storages, logger),
		BookingService:     NewBookingService(storages, logger),
		ItemRequestService: NewItemRequestService(storages, logger),
		AppInfoService:     appInfoService,
		HealthService:      NewHealthService(storages.Pinger),
	}, nil
}

// clock returns the current time in UTC truncated to whole seconds, the
// precision timestamps are stored with.
type clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
