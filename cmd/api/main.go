package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/lumalink/profile-service/internal/api/http"
	"github.com/lumalink/profile-service/internal/api/http/handlers"
	"github.com/lumalink/profile-service/internal/auth"
	"github.com/lumalink/profile-service/internal/config"
	"github.com/lumalink/profile-service/internal/events"
	"github.com/lumalink/profile-service/internal/observability"
	"github.com/lumalink/profile-service/internal/persistence"
	"github.com/lumalink/profile-service/internal/repository"
	"github.com/lumalink/profile-service/internal/service"
	"github.com/lumalink/profile-service/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	verificationRepo := repository.NewVerificationRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	pageRepo := repository.NewPageRepository(pool)
	socialLinkRepo := repository.NewSocialLinkRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	profileCache := persistence.NewProfileCache(redis, cfg.Redis.ProfileCacheTTL())

	authService, err := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}

	verificationService := service.NewVerificationService(verificationRepo, userRepo, dispatcher)
	profileService := service.NewProfileService(service.ProfileDependencies{
		ProfileRepo:    profileRepo,
		PageRepo:       pageRepo,
		SocialLinkRepo: socialLinkRepo,
		TemplateRepo:   templateRepo,
		UserRepo:       userRepo,
		Cache:          profileCache,
		Dispatcher:     dispatcher,
	})
	pageService := service.NewPageService(pageRepo, profileService)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Verification:   handlers.NewVerificationHandler(verificationService),
		Profile:        handlers.NewProfileHandler(profileService),
		Pages:          handlers.NewPageHandler(pageService),
		AuthMiddleware: authMiddleware,
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
