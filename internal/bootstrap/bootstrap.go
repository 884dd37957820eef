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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/serkank/amora/docs" // Import generated swagger docs
	appControllers "github.com/serkank/amora/internal/app/controllers"
	appMigrations "github.com/serkank/amora/internal/app/migrations"
	appRepos "github.com/serkank/amora/internal/app/repositories"
	appRoutes "github.com/serkank/amora/internal/app/routes"
	appServices "github.com/serkank/amora/internal/app/services"
	"github.com/serkank/amora/internal/config"
	"github.com/serkank/amora/internal/db"
	appMiddleware "github.com/serkank/amora/internal/middleware"
	pkgAuth "github.com/serkank/amora/internal/pkg/auth"
	"github.com/serkank/amora/internal/pkg/helpers"
	"github.com/serkank/amora/internal/pkg/logger"
	"github.com/serkank/amora/internal/pkg/photostorage"
	"github.com/serkank/amora/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	MemberService     appServices.MemberService
	PhotoService      appServices.PhotoService
	MessageService    appServices.MessageService
	AuthController    *appControllers.AuthController
	MemberController  *appControllers.MemberController
	PhotoController   *appControllers.PhotoController
	MessageController *appControllers.MessageController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	PhotoStorage      photostorage.PhotoStorage
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo data.
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
		// Demo data is a convenience; keep starting up
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.PhotoStorage, err = setupPhotoStorage(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize photo storage")
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.MemberRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.MemberService = appServices.NewMemberService(
		deps.Repos.MemberRepository,
		deps.Repos.LikeRepository,
		lgr,
	)
	deps.PhotoService = appServices.NewPhotoService(
		deps.Repos.PhotoRepository,
		deps.PhotoStorage,
		lgr,
	)
	deps.MessageService = appServices.NewMessageService(
		deps.Repos.MessageRepository,
		deps.Repos.MemberRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.PhotoController = appControllers.NewPhotoController(deps.PhotoService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)
	deps.AdminController = appControllers.NewAdminController(deps.PhotoService)

	return deps, nil
}

// setupPhotoStorage selects the photo store backend from configuration
func setupPhotoStorage(cfg *config.Config, lgr zerolog.Logger) (photostorage.PhotoStorage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		lgr.Info().Str("bucket", cfg.Storage.S3Bucket).Str("region", cfg.Storage.S3Region).Msg("Using S3 photo storage")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return photostorage.NewS3Storage(ctx, cfg.Storage.S3Region, cfg.Storage.S3Bucket)
	default:
		baseURL := cfg.Storage.BaseURL
		if strings.HasPrefix(baseURL, "/") {
			// Relative base URLs are served by this process
			baseURL = "http://localhost:" + cfg.Server.Port + baseURL
		}
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Using local photo storage")
		return photostorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
	}
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
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.MemberController,
		deps.PhotoController,
		deps.MessageController,
		deps.AdminController,
		deps.AuthMiddleware,
		deps.Repos.MemberRepository,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
