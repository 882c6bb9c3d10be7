package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shareit/internal/config"
	"github.com/MKhiriev/shareit/internal/handler"
	"github.com/MKhiriev/shareit/internal/handler/gateway"
	"github.com/MKhiriev/shareit/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer builds the core service transports configured in cfg.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(cfg.RequestTimeout), cfg.HTTPAddress, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// NewGatewayServer builds the gateway's HTTP server.
func NewGatewayServer(h *gateway.Handler, cfg config.Gateway, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new gateway server...")
	if h == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	router := h.Init(gateway.Limits{
		Rate:           cfg.RateLimit,
		Burst:          cfg.RateBurst,
		RequestTimeout: cfg.RequestTimeout,
	})

	return &server{
		httpServer: newHTTPServer(router, cfg.HTTPAddress, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	if s.httpServer != nil {
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		go s.gRPCServer.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
