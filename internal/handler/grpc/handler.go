package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the core service reports its health under, next to
// the overall "" entry.
const ServiceName = "shareit.Server"

// DefaultCheckInterval is how often [Handler.Watch] pings the database.
const DefaultCheckInterval = 5 * time.Second

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 service. The reported status follows
// the result of the health service's database check.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Watch refreshes the serving status every interval until ctx is done, then
// marks every service NOT_SERVING.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	h.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Run implements workers.Worker with [DefaultCheckInterval].
func (h *Handler) Run(ctx context.Context) {
	h.Watch(ctx, DefaultCheckInterval)
}

// Refresh runs one health check and publishes its outcome.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Refresh").Msg("health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	return status
}
