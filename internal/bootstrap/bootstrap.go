package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/classroom/internal/app/controllers"
	appMigrations "github.com/yigit/classroom/internal/app/migrations"
	appRepos "github.com/yigit/classroom/internal/app/repositories"
	appRoutes "github.com/yigit/classroom/internal/app/routes"
	appServices "github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/config"
	"github.com/yigit/classroom/internal/db"
	appMiddleware "github.com/yigit/classroom/internal/middleware"
	pkgAuth "github.com/yigit/classroom/internal/pkg/auth"
	"github.com/yigit/classroom/internal/pkg/filestorage"
	"github.com/yigit/classroom/internal/pkg/helpers"
	"github.com/yigit/classroom/internal/pkg/logger"
	"github.com/yigit/classroom/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	ClassService      *appServices.ClassService
	DashboardService  *appServices.DashboardService
	MaterialService   *appServices.MaterialService
	QuizService       *appServices.QuizService
	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	HeadController    *appControllers.HeadController
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
	FileStorage       *filestorage.LocalStorage
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

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds
// the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database, logger.WithComponent("migrations"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(ctx, appRepos.NewUserRepository(database), cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, cfg.StorageBaseURL())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.JWTService, logger.WithComponent("auth"))
	deps.StudentService = appServices.NewStudentService(repos.UserRepository, logger.WithComponent("students"))
	deps.ClassService = appServices.NewClassService(repos.ClassRepository, repos.UserRepository, repos.Transactor, logger.WithComponent("classes"))
	deps.DashboardService = appServices.NewDashboardService(repos.ClassRepository, repos.QuizRepository, repos.AssignmentRepository, logger.WithComponent("dashboard"))
	deps.MaterialService = appServices.NewMaterialService(repos.MaterialRepository, repos.UserRepository, repos.ClassRepository, deps.FileStorage, logger.WithComponent("materials"))
	deps.QuizService = appServices.NewQuizService(repos.QuizRepository, logger.WithComponent("quizzes"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.ClassService, deps.StudentService, lgr)
	deps.HeadController = appControllers.NewHeadController(deps.DashboardService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.MaterialService, lgr)
	deps.TeacherController = appControllers.NewTeacherController(deps.QuizService, deps.MaterialService, lgr)

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
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.HeadController,
		deps.StudentController,
		deps.TeacherController,
		deps.AuthMiddleware,
	)

	return router
}
