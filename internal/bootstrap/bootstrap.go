package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ecakir/edurecords/internal/app/controllers"
	appMigrations "github.com/ecakir/edurecords/internal/app/migrations"
	appRepos "github.com/ecakir/edurecords/internal/app/repositories"
	appRoutes "github.com/ecakir/edurecords/internal/app/routes"
	appServices "github.com/ecakir/edurecords/internal/app/services"
	"github.com/ecakir/edurecords/internal/config"
	"github.com/ecakir/edurecords/internal/db"
	"github.com/ecakir/edurecords/internal/gateway"
	"github.com/ecakir/edurecords/internal/graph"
	appMiddleware "github.com/ecakir/edurecords/internal/middleware"
	"github.com/ecakir/edurecords/internal/metrics"
	"github.com/ecakir/edurecords/internal/pkg/logger"
	"github.com/ecakir/edurecords/internal/seed"
)

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds demo data. Used by the data services and the GraphQL layer;
// the gateway holds no database connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures are not fatal; the services run fine on an empty database
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// newRouter creates a gin engine with the shared middleware stack.
func newRouter(cfg *config.Config, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Services.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(lgr))
	router.Use(appMiddleware.RequestLogger(lgr))
	return router
}

// BuildStudentRouter wires the student service.
func BuildStudentRouter(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	repos := appRepos.NewRepositories(dbPool)
	studentService := appServices.NewStudentService(repos.StudentRepository)
	studentController := appControllers.NewStudentController(studentService)

	router := newRouter(cfg, lgr)
	appRoutes.SetupStudentRoutes(router, studentController)
	return router
}

// BuildCourseRouter wires the course service, which also owns the
// enrollment endpoints and the by-user integration endpoint.
func BuildCourseRouter(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	repos := appRepos.NewRepositories(dbPool)
	courseService := appServices.NewCourseService(repos.CourseRepository)
	enrollmentService := appServices.NewEnrollmentService(
		repos.EnrollmentRepository,
		repos.StudentRepository,
		repos.CourseRepository,
		lgr,
	)
	courseController := appControllers.NewCourseController(courseService)
	enrollmentController := appControllers.NewEnrollmentController(enrollmentService)

	router := newRouter(cfg, lgr)
	appRoutes.SetupCourseRoutes(router, courseController, enrollmentController)
	return router
}

// BuildGatewayRouter wires the API gateway. It talks HTTP to the owning
// services and never touches the database.
func BuildGatewayRouter(cfg *config.Config, lgr zerolog.Logger) *gin.Engine {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	httpClient := &http.Client{Timeout: cfg.GatewayRequestTimeout()}
	client := gateway.NewClient(
		httpClient,
		cfg.Gateway.StudentServiceURL,
		cfg.Gateway.CourseServiceURL,
		lgr,
		collector,
	)
	gatewayController := appControllers.NewGatewayController(client)

	router := newRouter(cfg, lgr)
	appRoutes.SetupGatewayRoutes(router, gatewayController, registry)
	return router
}

// BuildGraphQLRouter wires the GraphQL layer over the same services the
// REST surfaces use.
func BuildGraphQLRouter(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*gin.Engine, error) {
	repos := appRepos.NewRepositories(dbPool)
	studentService := appServices.NewStudentService(repos.StudentRepository)
	courseService := appServices.NewCourseService(repos.CourseRepository)
	enrollmentService := appServices.NewEnrollmentService(
		repos.EnrollmentRepository,
		repos.StudentRepository,
		repos.CourseRepository,
		lgr,
	)
	compositeService := appServices.NewCompositeService(repos.StudentRepository, repos.CourseRepository)

	resolver := graph.NewResolver(studentService, courseService, enrollmentService, compositeService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}

	router := newRouter(cfg, lgr)
	appRoutes.SetupGraphQLRoutes(router, schema)
	return router, nil
}
