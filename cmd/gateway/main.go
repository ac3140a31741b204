package main

import (
	"os"

	"github.com/ecakir/edurecords/internal/bootstrap"
	"github.com/ecakir/edurecords/internal/pkg/logger"
	"github.com/ecakir/edurecords/internal/server"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize gateway")
		os.Exit(1)
	}

	// The gateway is stateless: no database connection, only HTTP
	// clients to the owning services.
	router := bootstrap.BuildGatewayRouter(cfg, lgr)

	srv := server.New("api-gateway", cfg.Services.GatewayPort, router, nil, lgr)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Gateway execution failed")
		os.Exit(1)
	}
}
