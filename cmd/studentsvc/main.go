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
		logger.Error().Err(err).Msg("Failed to initialize student service")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}

	router := bootstrap.BuildStudentRouter(cfg, dbPool, lgr)

	srv := server.New("student-service", cfg.Services.StudentPort, router, dbPool, lgr)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Student service execution failed")
		os.Exit(1)
	}
}
