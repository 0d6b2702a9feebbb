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

	_ "github.com/skillbridge/skillbridge-backend/docs" // Import generated swagger docs
	appControllers "github.com/skillbridge/skillbridge-backend/internal/app/controllers"
	appMigrations "github.com/skillbridge/skillbridge-backend/internal/app/migrations"
	appRepos "github.com/skillbridge/skillbridge-backend/internal/app/repositories"
	appRoutes "github.com/skillbridge/skillbridge-backend/internal/app/routes"
	appServices "github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/config"
	"github.com/skillbridge/skillbridge-backend/internal/db"
	appMiddleware "github.com/skillbridge/skillbridge-backend/internal/middleware"
	pkgAuth "github.com/skillbridge/skillbridge-backend/internal/pkg/auth"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/genai"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/notification"
	"github.com/skillbridge/skillbridge-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService      *appServices.CourseService
	CartService        *appServices.CartService
	SettlementService  *appServices.SettlementService
	AccessService      *appServices.AccessService
	UserService        *appServices.UserService
	TeacherService     *appServices.TeacherService
	TestimonialService *appServices.TestimonialService
	RoadmapService     *appServices.RoadmapService

	CourseController      *appControllers.CourseController
	AdminController       *appControllers.AdminController
	CartController        *appControllers.CartController
	PurchaseController    *appControllers.PurchaseController
	UserController        *appControllers.UserController
	WebhookController     *appControllers.WebhookController
	TeacherController     *appControllers.TeacherController
	TestimonialController *appControllers.TestimonialController
	RoadmapController     *appControllers.RoadmapController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Notifier       notification.Notifier
	Logger         zerolog.Logger
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

	// Demo data for development mode only
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Identity.JWTSecret,
		TokenIssuer: cfg.Identity.Issuer,
	})

	if cfg.Notification.SendGridKey != "" {
		deps.Notifier = notification.NewSendgridNotifier(
			cfg.Notification.SendGridKey,
			cfg.Notification.FromName,
			cfg.Notification.FromEmail,
		)
	} else {
		lgr.Warn().Msg("SendGrid key not configured, purchase receipts will only be logged")
		deps.Notifier = notification.NoopNotifier{}
	}

	generator := genai.NewGeminiClient(cfg.GenAI.APIKey, cfg.GenAI.Model, cfg.GenAI.BaseURL)

	// Services
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.EnrollmentRepository)
	deps.CartService = appServices.NewCartService(deps.Repos.CartRepository, deps.Repos.CourseRepository)
	deps.SettlementService = appServices.NewSettlementService(deps.Repos.SettlementRepository, deps.Notifier)
	deps.AccessService = appServices.NewAccessService(deps.Repos.EnrollmentRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.TestimonialService = appServices.NewTestimonialService(deps.Repos.TestimonialRepository)
	deps.RoadmapService = appServices.NewRoadmapService(deps.Repos.RoadmapRepository, generator)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.AdminController = appControllers.NewAdminController(deps.CourseService)
	deps.CartController = appControllers.NewCartController(deps.CartService)
	deps.PurchaseController = appControllers.NewPurchaseController(deps.SettlementService, deps.AccessService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.WebhookController = appControllers.NewWebhookController(deps.UserService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.TestimonialController = appControllers.NewTestimonialController(deps.TestimonialService)
	deps.RoadmapController = appControllers.NewRoadmapController(deps.RoadmapService)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.AdminController,
		deps.CartController,
		deps.PurchaseController,
		deps.UserController,
		deps.WebhookController,
		deps.TeacherController,
		deps.TestimonialController,
		deps.RoadmapController,
		deps.AuthMiddleware,
		appMiddleware.WebhookSignature(cfg.Identity.WebhookSecret),
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
