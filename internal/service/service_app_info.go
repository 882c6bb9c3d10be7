package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shareit/internal/config"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

type healthService struct {
	pinger store.Pinger
}

func NewHealthService(pinger store.Pinger) HealthService {
	return &healthService{pinger: pinger}
}

// Check pings the database.
func (s *healthService) Check(ctx context.Context) error {
	if s.pinger == nil {
		return fmt.Errorf("health check: no storage configured")
	}
	if err := s.pinger.PingContext(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}
