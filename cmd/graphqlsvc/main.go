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
		logger.Error().Err(err).Msg("Failed to initialize GraphQL service")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}

	router, err := bootstrap.BuildGraphQLRouter(cfg, dbPool, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build GraphQL router")
		dbPool.Close()
		os.Exit(1)
	}

	srv := server.New("graphql-service", cfg.Services.GraphQLPort, router, dbPool, lgr)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("GraphQL service execution failed")
		os.Exit(1)
	}
}
