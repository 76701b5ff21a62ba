package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/collegefinance/internal/app/controllers"
	appMigrations "github.com/yigit/collegefinance/internal/app/migrations"
	appRepos "github.com/yigit/collegefinance/internal/app/repositories"
	appRoutes "github.com/yigit/collegefinance/internal/app/routes"
	appServices "github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/config"
	"github.com/yigit/collegefinance/internal/db"
	appMiddleware "github.com/yigit/collegefinance/internal/middleware"
	pkgAuth "github.com/yigit/collegefinance/internal/pkg/auth"
	"github.com/yigit/collegefinance/internal/pkg/helpers"
	"github.com/yigit/collegefinance/internal/pkg/logger"
	"github.com/yigit/collegefinance/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	YearService        appServices.YearService
	DepartmentService  appServices.DepartmentService
	TransactionService appServices.TransactionService
	SettingService     appServices.SettingService
	StudentService     appServices.StudentService
	ReportService      appServices.ReportService
	MaintenanceService appServices.MaintenanceService

	HealthController      *appControllers.HealthController
	AuthController        *appControllers.AuthController
	YearController        *appControllers.YearController
	DepartmentController  *appControllers.DepartmentController
	TransactionController *appControllers.TransactionController
	StudentController     *appControllers.StudentController
	SettingController     *appControllers.SettingController
	ReportController      *appControllers.ReportController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env, then the configuration, and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  cfg.Logging.Format == "text",
		Service: "collegefinance",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(cfg.GetPostgresConnectionString(), lgr).Up(); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return database.Pool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService, lgr)
	deps.YearService = appServices.NewYearService(deps.Repos.YearRepository, deps.Repos.DepartmentRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.TransactionService = appServices.NewTransactionService(deps.Repos.TransactionRepository)
	deps.SettingService = appServices.NewSettingService(deps.Repos.SettingRepository, deps.Repos.StudentRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.SettingService, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository)
	deps.MaintenanceService = appServices.NewMaintenanceService(
		deps.Repos.MaintenanceRepository,
		deps.Repos.YearRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.TransactionRepository,
		lgr,
	)

	if err := seed.CreateDefaultData(context.Background(), deps.AuthService, cfg, lgr); err != nil {
		return nil, fmt.Errorf("failed to create default data: %w", err)
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.HealthController = appControllers.NewHealthController(dbPool)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.YearController = appControllers.NewYearController(deps.YearService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.TransactionController = appControllers.NewTransactionController(deps.TransactionService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SettingController = appControllers.NewSettingController(deps.SettingService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, deps.TransactionService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.Server.AllowOrigins))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.AuthController,
		deps.YearController,
		deps.DepartmentController,
		deps.TransactionController,
		deps.StudentController,
		deps.SettingController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router, nil
}
