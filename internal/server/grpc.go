package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/shareit/internal/handler/grpc"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/workers"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// watch runs the health loop until stopWatch is called
	watch     func()
	stopWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", address, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	ctx, cancel := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		watch:           func() { workers.New(handler).Run(ctx) },
		stopWatch:       cancel,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.watch()

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.server.GracefulStop()
}
