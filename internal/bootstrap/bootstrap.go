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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/devang/kalasangam/internal/app/auth"
	appControllers "github.com/devang/kalasangam/internal/app/controllers"
	appMigrations "github.com/devang/kalasangam/internal/app/migrations"
	appRepos "github.com/devang/kalasangam/internal/app/repositories"
	appRoutes "github.com/devang/kalasangam/internal/app/routes"
	appServices "github.com/devang/kalasangam/internal/app/services"
	"github.com/devang/kalasangam/internal/config"
	"github.com/devang/kalasangam/internal/db"
	appMiddleware "github.com/devang/kalasangam/internal/middleware"
	pkgAuth "github.com/devang/kalasangam/internal/pkg/auth"
	"github.com/devang/kalasangam/internal/pkg/filestorage"
	"github.com/devang/kalasangam/internal/pkg/helpers"
	"github.com/devang/kalasangam/internal/pkg/logger"
	"github.com/devang/kalasangam/internal/pkg/metrics"
	"github.com/devang/kalasangam/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyService       appServices.FacultyService
	StudentService       appServices.StudentService
	ClubMemberService    appServices.ClubMemberService
	EventService         appServices.EventService
	ReportService        appServices.ReportService
	DashboardService     appServices.DashboardService
	Gateway              *appAuth.Gateway
	Guard                *appAuth.Guard
	AuthController       *appControllers.AuthController
	FacultyController    *appControllers.FacultyController
	StudentController    *appControllers.StudentController
	ClubMemberController *appControllers.ClubMemberController
	EventController      *appControllers.EventController
	ReportController     *appControllers.ReportController
	UploadController     *appControllers.UploadController
	DashboardController  *appControllers.DashboardController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
	AssetStorage         filestorage.AssetStorage
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

// SetupDatabase connects to the database, runs migrations and seeds the
// default admin. A deployment with no database settings comes up anyway with
// a nil pool: reads serve empty collections and writes are rejected.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if !cfg.DatabaseConfigured() {
		lgr.Warn().Msg("Database not configured; content store runs in degraded mode")
		return nil, nil
	}

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

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		// Boot continues; the admin panel is unusable until an admin exists.
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Asset storage: the remote media host when configured, local disk
	// behind the /uploads static route otherwise.
	if cfg.CloudinaryConfigured() {
		deps.AssetStorage = filestorage.NewCloudinaryStorage(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset)
		lgr.Info().Str("cloud", cfg.Cloudinary.CloudName).Msg("Using remote media host for asset uploads")
	} else {
		baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
		local, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize file storage")
			return nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		deps.AssetStorage = local
		lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Using local disk for asset uploads")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Gateway = appAuth.NewGateway(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService, lgr)
	deps.Guard = appAuth.NewGuard(deps.Repos.AdminRepository)

	// Audit trail for every principal change the gateway publishes.
	deps.Gateway.OnAuthStateChange(func(p *appAuth.Principal) {
		if p == nil {
			lgr.Debug().Msg("Auth state changed: signed out")
			return
		}
		lgr.Debug().Str("uid", p.UID).Msg("Auth state changed: signed in")
	})

	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.ClubMemberService = appServices.NewClubMemberService(deps.Repos.ClubMemberRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.FacultyRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ClubMemberRepository,
		deps.Repos.EventRepository,
		deps.Repos.ReportRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Guard, deps.Gateway)

	deps.AuthController = appControllers.NewAuthController(deps.Gateway)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ClubMemberController = appControllers.NewClubMemberController(deps.ClubMemberService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.UploadController = appControllers.NewUploadController(deps.AssetStorage)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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

	// The public site is a separate SPA, so cross-origin reads must work.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	metrics.Register()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FacultyController,
		deps.StudentController,
		deps.ClubMemberController,
		deps.EventController,
		deps.ReportController,
		deps.UploadController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
