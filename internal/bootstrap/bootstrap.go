package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eduverify/internship-portal/docs" // Import generated swagger docs
	appControllers "github.com/eduverify/internship-portal/internal/app/controllers"
	appMigrations "github.com/eduverify/internship-portal/internal/app/migrations"
	appRepos "github.com/eduverify/internship-portal/internal/app/repositories"
	appRoutes "github.com/eduverify/internship-portal/internal/app/routes"
	appServices "github.com/eduverify/internship-portal/internal/app/services"
	"github.com/eduverify/internship-portal/internal/config"
	"github.com/eduverify/internship-portal/internal/db"
	appMiddleware "github.com/eduverify/internship-portal/internal/middleware"
	"github.com/eduverify/internship-portal/internal/pkg/logger"
	"github.com/eduverify/internship-portal/internal/pkg/pdf"
	"github.com/eduverify/internship-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DocumentService    appServices.DocumentService
	DocumentController *appControllers.DocumentController
	Templates          *pdf.Store
	Repos              *appRepos.Repositories
	Logger             zerolog.Logger
}

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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds demo data outside production.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDemoData(ctx, dbPool, lgr); err != nil {
			// Demo data is a convenience, not a startup requirement.
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Templates = pdf.NewStore(cfg.Templates.CertificatePath, cfg.Templates.AttendancePath)

	// Missing templates only fail the requests that need them, but a
	// warning at startup beats a surprise at first download.
	for _, path := range deps.Templates.Paths() {
		if _, err := os.Stat(path); err != nil {
			lgr.Warn().Str("path", path).Msg("Template file not found, document generation will fail until it is provided")
		}
	}

	deps.DocumentService = appServices.NewDocumentService(
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		deps.Templates,
		lgr,
	)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	window, err := time.ParseDuration(cfg.RateLimit.Window)
	if err != nil {
		lgr.Warn().Err(err).Str("window", cfg.RateLimit.Window).Msg("Invalid rate limit window, using 15m")
		window = 15 * time.Minute
	}
	router.Use(appMiddleware.RateLimit(cfg.RateLimit.Requests, window))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.DocumentController)

	return router
}
