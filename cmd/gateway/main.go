package main

import (
	"fmt"

	"github.com/MKhiriev/shareit/internal/config"
	"github.com/MKhiriev/shareit/internal/handler"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/server"
	"github.com/MKhiriev/shareit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("shareit-gateway")
	cfg, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Gateway).Msg("received configs")

	h, err := handler.NewGatewayHandler(cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gateway handler")
	}

	srv, err := server.NewGatewayServer(h, cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gateway server")
	}

	srv.RunServer()
}
