package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzk/learnhub/internal/app/controllers"
	appRepos "github.com/oguzk/learnhub/internal/app/repositories"
	appRoutes "github.com/oguzk/learnhub/internal/app/routes"
	appServices "github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/config"
	appMiddleware "github.com/oguzk/learnhub/internal/middleware"
	pkgAuth "github.com/oguzk/learnhub/internal/pkg/auth"
	"github.com/oguzk/learnhub/internal/pkg/email"
	"github.com/oguzk/learnhub/internal/pkg/logger"
	"github.com/oguzk/learnhub/internal/scheduler"
	"github.com/oguzk/learnhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	JWTService *pkgAuth.JWTService

	AuthService       appServices.AuthService       // Interface type
	CourseService     appServices.CourseService     // Interface type
	EnrollmentService appServices.EnrollmentService // Interface type
	ProgressService   appServices.ProgressService   // Interface type
	ReminderService   appServices.ReminderService   // Interface type
	UserService       appServices.UserService       // Interface type

	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	ProgressController   *appControllers.ProgressController
	ReminderController   *appControllers.ReminderController
	UserController       *appControllers.UserController

	AuthMiddleware *appMiddleware.AuthMiddleware

	EmailService      email.EmailService
	ReminderScheduler *scheduler.ReminderScheduler

	Logger zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	// Load the fixed course catalog into the fresh store.
	if err := seed.CreateDefaultData(context.Background(), deps.Repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed course catalog")
		return nil, err
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository)
	deps.ProgressService = appServices.NewProgressService(deps.Repos.ProgressRepository)
	deps.ReminderService = appServices.NewReminderService(deps.Repos.ReminderRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.EnrollmentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, lgr)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.ReminderController = appControllers.NewReminderController(deps.ReminderService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	deps.ReminderScheduler = scheduler.NewReminderScheduler(
		cfg.Reminders.CheckSchedule,
		deps.ReminderService,
		deps.AuthService,
		deps.CourseService,
		deps.EmailService,
		lgr,
	)

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

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.ProgressController,
		deps.ReminderController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
