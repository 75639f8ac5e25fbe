package app

import (
	"brightminds_backend/internal/config"
	"brightminds_backend/internal/controller"
	"brightminds_backend/internal/repository"
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"
	"brightminds_backend/pkg/configwatcher"
	"brightminds_backend/pkg/database"
	"brightminds_backend/pkg/logger"
	"brightminds_backend/pkg/monitoring"
	"brightminds_backend/pkg/security"
	"brightminds_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig takes a freshly reloaded config. Only settings read per
// request pick it up; server port and connections stay as booted.
func (a *App) applyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

type repositories struct {
	user         *repository.UserRepository
	child        *repository.ChildRepository
	session      *repository.PlaySessionRepository
	game         *repository.GameRepository
	quiz         *repository.QuizRepository
	story        *repository.StoryRepository
	achievement  *repository.AchievementRepository
	goal         *repository.GoalRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	child        *service.ChildService
	notification *service.NotificationService
	progression  *service.ProgressionService
	quiz         *service.QuizService
	game         *service.GameService
	story        *service.StoryService
	goal         *service.GoalService
	achievement  *service.AchievementService
	dashboard    *service.DashboardService
}

type controllers struct {
	auth        *controller.AuthController
	parent      *controller.ParentController
	quiz        *controller.QuizController
	game        *controller.GameController
	story       *controller.StoryController
	achievement *controller.AchievementController
	dashboard   *controller.DashboardController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		child:        repository.NewChildRepository(db),
		session:      repository.NewPlaySessionRepository(db),
		game:         repository.NewGameRepository(db),
		quiz:         repository.NewQuizRepository(db),
		story:        repository.NewStoryRepository(db),
		achievement:  repository.NewAchievementRepository(db),
		goal:         repository.NewGoalRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}
	clock := util.SystemClock{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.child, cfg)
	s.child = service.NewChildService(repos.child, s.storage)
	s.notification = service.NewNotificationService(repos.notification)

	streaks := service.NewStreakTracker(repos.child, clock)
	goals := service.NewGoalProgressTracker(repos.goal, clock, s.notification, logger.Log)
	achievements := service.NewAchievementEvaluator(repos.achievement, repos.session, repos.child, s.notification, logger.Log)
	s.progression = service.NewProgressionService(repos.child, repos.session, streaks, goals, achievements, s.notification, logger.Log)

	s.quiz = service.NewQuizService(repos.quiz, s.progression)
	s.game = service.NewGameService(repos.game, repos.session, s.progression)
	s.story = service.NewStoryService(repos.story, s.progression)
	s.goal = service.NewGoalService(repos.goal, repos.child, clock, logger.Log)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.dashboard = service.NewDashboardService(repos.child, repos.session, repos.achievement, rdb, logger.Log)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		parent:      controller.NewParentController(s.child, s.auth, s.goal, s.notification, s.dashboard),
		quiz:        controller.NewQuizController(s.quiz, s.child),
		game:        controller.NewGameController(s.game, s.child),
		story:       controller.NewStoryController(s.story, s.child),
		achievement: controller.NewAchievementController(s.achievement, s.child),
		dashboard:   controller.NewDashboardController(s.dashboard, s.child),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the goal lifecycle sweep. Goals past their end
// date flip to expired soon after midnight without waiting for traffic.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		for range ticker.C {
			if err := s.goal.ExpireOverdueGoals(); err != nil {
				logger.Log.Error("goal expiry sweep failed", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("brightminds", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	go configwatcher.WatchConfig("configs/config.yaml", app.applyConfig)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
