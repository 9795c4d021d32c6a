package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/oicpanel/backend/api/handler"
	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/internal/config"
	"github.com/oicpanel/backend/internal/infrastructure/buffer"
	"github.com/oicpanel/backend/internal/infrastructure/monitor"
	pgInfra "github.com/oicpanel/backend/internal/infrastructure/postgres"
	redisInfra "github.com/oicpanel/backend/internal/infrastructure/redis"
	"github.com/oicpanel/backend/internal/middleware"
	"github.com/oicpanel/backend/internal/router"
	"github.com/oicpanel/backend/internal/services"
	"github.com/oicpanel/backend/internal/services/lifecycle"
	"github.com/oicpanel/backend/pkg/httpcontext"
	"github.com/oicpanel/backend/pkg/logger"
	"github.com/oicpanel/backend/pkg/token"
	"github.com/oicpanel/backend/repository/postgres"
	redisRepo "github.com/oicpanel/backend/repository/redis"
	acuerdoUC "github.com/oicpanel/backend/usecase/acuerdo"
	authUC "github.com/oicpanel/backend/usecase/auth"
	enteUC "github.com/oicpanel/backend/usecase/ente"
	oicUC "github.com/oicpanel/backend/usecase/oic"
	statsUC "github.com/oicpanel/backend/usecase/stats"
	userUC "github.com/oicpanel/backend/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.Auth.TokenSecret == "" {
		log.Fatal("AUTH_TOKEN_SECRET is required")
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	enteRepo := postgres.NewEnteRepository(pool)
	oicRepo := postgres.NewOICRepository(pool)
	acuerdoRepo := postgres.NewAcuerdoRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	statsCache := redisRepo.NewStatsCache(redisClient, cfg.Stats.CacheTTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		acuerdoRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  cfg.Buffer.BatchSize,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	tokenIssuer := token.New(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL)

	authService := authUC.New(userRepo, tokenIssuer, zapLogger)
	enteUseCase := enteUC.New(enteRepo, zapLogger)
	oicUseCase := oicUC.New(oicRepo, enteRepo, zapLogger)
	acuerdoUseCase := acuerdoUC.New(acuerdoRepo, bufferBridge, zapLogger)
	statsUseCase := statsUC.New(statsRepo, statsCache, zapLogger)
	userUseCase := userUC.New(userRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth: apiHandler.NewAuthHandler(authService, apiHandler.CookieConfig{
			Name:   cfg.Auth.CookieName,
			MaxAge: cfg.Auth.TokenTTL,
			Secure: cfg.Auth.CookieSecure,
		}, ctxAdapter, zapLogger),
		Ente:    apiHandler.NewEnteHandler(enteUseCase, ctxAdapter, zapLogger),
		OIC:     apiHandler.NewOICHandler(oicUseCase, ctxAdapter, zapLogger),
		Acuerdo: apiHandler.NewAcuerdoHandler(acuerdoUseCase, ctxAdapter, zapLogger),
		Stats:   apiHandler.NewStatsHandler(statsUseCase, ctxAdapter, zapLogger),
		User:    apiHandler.NewUserHandler(userUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	cookieAuth := middleware.CookieAuth(authService, cfg.Auth.CookieName, ctxAdapter, zapLogger)
	requireRoles := func(roles ...domain.Role) middleware.Middleware {
		return middleware.RequireRoles(zapLogger, roles...)
	}
	r := router.New(handlers, cookieAuth, requireRoles)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
