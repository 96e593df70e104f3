package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/skills-registry/internal/api/http"
	"github.com/spec-kit/skills-registry/internal/api/http/handlers"
	"github.com/spec-kit/skills-registry/internal/auth"
	"github.com/spec-kit/skills-registry/internal/config"
	"github.com/spec-kit/skills-registry/internal/events"
	"github.com/spec-kit/skills-registry/internal/observability"
	"github.com/spec-kit/skills-registry/internal/persistence"
	"github.com/spec-kit/skills-registry/internal/service"
	"github.com/spec-kit/skills-registry/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store := persistence.NewStore(logger)
	userRepo := persistence.NewUserRepository(store)
	skillRepo := persistence.NewSkillRepository(store)
	statsRepo := persistence.NewStatisticsRepository(store)
	newsRepo := persistence.NewNewsRepository(store)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth.BcryptCost, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	skillService := service.NewSkillService(skillRepo, dispatcher)
	statsService := service.NewStatisticsService(statsRepo)
	newsService := service.NewNewsService(newsRepo, dispatcher)

	aggregationService := service.NewAggregationService(statsRepo, dispatcher, logger)
	worker.StartStatisticsWorker(aggregationService)

	sessions := auth.NewSessionManager(cfg.Session.TTL(), logger)
	sessions.StartSweeper(cfg.Session.SweepInterval())
	defer sessions.Stop()

	sessionMiddleware := auth.NewSessionMiddleware(sessions, userRepo, cfg.Session.CookieName)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:       handlers.NewAuthHandler(authService, sessions, cfg.Session),
		Skills:     handlers.NewSkillsHandler(skillService),
		Statistics: handlers.NewStatisticsHandler(statsService),
		News:       handlers.NewNewsHandler(newsService),
		Session:    sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
