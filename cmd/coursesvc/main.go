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
		logger.Error().Err(err).Msg("Failed to initialize course service")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}

	router := bootstrap.BuildCourseRouter(cfg, dbPool, lgr)

	srv := server.New("course-service", cfg.Services.CoursePort, router, dbPool, lgr)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Course service execution failed")
		os.Exit(1)
	}
}
