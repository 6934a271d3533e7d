package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rajank18/prograde/internal/app/controllers"
	"github.com/rajank18/prograde/internal/app/ingest"
	appMigrations "github.com/rajank18/prograde/internal/app/migrations"
	appRepos "github.com/rajank18/prograde/internal/app/repositories"
	appRoutes "github.com/rajank18/prograde/internal/app/routes"
	appServices "github.com/rajank18/prograde/internal/app/services"
	"github.com/rajank18/prograde/internal/config"
	"github.com/rajank18/prograde/internal/db"
	appMiddleware "github.com/rajank18/prograde/internal/middleware"
	pkgAuth "github.com/rajank18/prograde/internal/pkg/auth"
	"github.com/rajank18/prograde/internal/pkg/filestage"
	"github.com/rajank18/prograde/internal/pkg/helpers"
	"github.com/rajank18/prograde/internal/pkg/logger"
	"github.com/rajank18/prograde/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	AdminService      *appServices.AdminService
	FacultyService    *appServices.FacultyService
	StudentService    *appServices.StudentService
	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	FacultyController *appControllers.FacultyController
	StudentController *appControllers.StudentController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Stager            *filestage.Stager
	Logger            zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.Stager, err = filestage.NewStager(cfg.Server.StagingDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file staging")
		return nil, fmt.Errorf("failed to initialize file staging: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	pipeline := ingest.NewPipeline(deps.Repos.IngestStore, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos.UserRepository, deps.Repos.CourseRepository)
	deps.FacultyService = appServices.NewFacultyService(
		deps.Repos.UserRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ProjectRepository,
		pipeline,
		deps.Stager,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.ProjectRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

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

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.FacultyController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
