package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/controller"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/pkg/logger"
	"trivia_quiz_backend/pkg/monitoring"
	"trivia_quiz_backend/pkg/security"
	"trivia_quiz_backend/pkg/seedwatcher"
	"trivia_quiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Repo   *repository.QuestionRepository

	tracerShutdown func(context.Context) error
}

type services struct {
	quiz     *service.QuizService
	question *service.QuestionService
}

type controllers struct {
	quiz     *controller.QuizController
	question *controller.QuestionController
	health   *controller.HealthController
}

func (a *App) initServices(repo *repository.QuestionRepository) *services {
	return &services{
		quiz:     service.NewQuizService(repo),
		question: service.NewQuestionService(repo),
	}
}

func (a *App) initControllers(s *services, repo *repository.QuestionRepository) *controllers {
	return &controllers{
		quiz:     controller.NewQuizController(s.quiz),
		question: controller.NewQuestionController(s.question),
		health:   controller.NewHealthController(repo),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	// 题库加载失败是致命错误，必须在监听端口前退出
	entries, err := repository.LoadSeedFile(cfg.Seed.Path)
	if err != nil {
		logger.Log.Fatal("Failed to load question seed", zap.String("path", cfg.Seed.Path), zap.Error(err))
	}

	repo := repository.NewQuestionRepository()
	repo.LoadAll(entries)
	logger.Log.Info("Question bank loaded", zap.String("path", cfg.Seed.Path), zap.Int("questions", repo.Count()))

	app := &App{
		Config: cfg,
		Repo:   repo,
	}

	services := app.initServices(repo)
	controllers := app.initControllers(services, repo)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	router.LoadHTMLGlob("templates/*.html")

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("trivia-quiz", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerShutdown = tp.Shutdown
	}

	app.registerRoutes(router, controllers)

	if cfg.Seed.Watch {
		go seedwatcher.WatchSeed(cfg.Seed.Path, repo)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
