package handler

import (
	"fmt"

	"github.com/MKhiriev/shareit/internal/adapter"
	"github.com/MKhiriev/shareit/internal/config"
	"github.com/MKhiriev/shareit/internal/handler/gateway"
	"github.com/MKhiriev/shareit/internal/handler/grpc"
	"github.com/MKhiriev/shareit/internal/handler/http"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/service"
	"github.com/MKhiriev/shareit/internal/validators"
)

// Handlers holds the transports of the core service. A transport is nil when
// its address is not configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// NewGatewayHandler wires the gateway to the core service at cfg.ServerURL.
func NewGatewayHandler(cfg config.Gateway, logger *logger.Logger) (*gateway.Handler, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	core, err := adapter.NewHTTPCoreAdapter(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating core adapter: %w", err)
	}

	return gateway.NewHandler(core, validators.NewRequestValidator(), logger), nil
}
