// Command plannerd runs the Legacy Planner HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/4ak45h/Legacy-Planner/internal/application/usecase"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	"github.com/4ak45h/Legacy-Planner/internal/domain/service"
	"github.com/4ak45h/Legacy-Planner/internal/infrastructure/adapter"
	"github.com/4ak45h/Legacy-Planner/internal/infrastructure/cache"
	"github.com/4ak45h/Legacy-Planner/internal/infrastructure/config"
	"github.com/4ak45h/Legacy-Planner/internal/infrastructure/messaging"
	pgRepo "github.com/4ak45h/Legacy-Planner/internal/infrastructure/persistence/postgres"
	"github.com/4ak45h/Legacy-Planner/internal/presentation/middleware"
	"github.com/4ak45h/Legacy-Planner/internal/presentation/rest"
	"github.com/4ak45h/Legacy-Planner/pkg/auth"
	kafkapkg "github.com/4ak45h/Legacy-Planner/pkg/kafka"
	"github.com/4ak45h/Legacy-Planner/pkg/observability"
	"github.com/4ak45h/Legacy-Planner/pkg/postgres"
)

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	logger.Info("starting legacy planner", "http_port", cfg.HTTPPort)

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database -----------------------------------------------------------
	pgCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: int32(cfg.DB.MaxConns),
		MinConns: int32(cfg.DB.MinConns),
	}

	if err := postgres.RunMigrations(pgCfg.DSN(), cfg.MigrationsPath); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database", "host", cfg.DB.Host, "db", cfg.DB.Name)

	// --- Messaging ----------------------------------------------------------
	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Brokers[0] != "" {
		producer := kafkapkg.NewProducer(kafkapkg.Config{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		publisher = messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
		logger.Info("kafka publisher enabled", "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewNoopEventPublisher(logger)
		logger.Info("no kafka brokers configured, events will be logged only")
	}

	// --- Snapshot cache -----------------------------------------------------
	var snapshotCache port.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisSnapshotCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		snapshotCache = redisCache
		logger.Info("redis snapshot cache enabled", "addr", cfg.Redis.Addr)
	} else {
		snapshotCache = cache.NewMemorySnapshotCache()
	}

	// --- External services --------------------------------------------------
	var oracle port.SuccessOracle
	if cfg.Oracle.UseStub {
		oracle = adapter.NewStubOracle()
		logger.Info("using stub success oracle")
	} else {
		oracle = adapter.NewOracleClient(adapter.OracleConfig{
			URL:     cfg.Oracle.URL,
			Timeout: cfg.Oracle.Timeout,
		})
	}

	var advisor port.AdvisorClient
	if cfg.Advisor.APIKey != "" {
		advisorCfg := adapter.DefaultAdvisorConfig()
		advisorCfg.APIKey = cfg.Advisor.APIKey
		advisorCfg.URL = cfg.Advisor.URL
		advisorCfg.Model = cfg.Advisor.Model
		advisorCfg.MaxRetries = cfg.Advisor.MaxRetries
		advisor = adapter.NewAdvisorClient(advisorCfg)
	} else {
		logger.Info("no advisor API key configured, chat will use the deterministic fallback")
	}

	// --- Auth ---------------------------------------------------------------
	jwtCfg := auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		Expiration: cfg.Auth.TokenExpiry,
	}
	if cfg.Auth.PrivateKeyPath != "" {
		pem, err := auth.LoadKeyFromFile(cfg.Auth.PrivateKeyPath)
		if err != nil {
			logger.Error("failed to load JWT key", "error", err)
			os.Exit(1)
		}
		jwtCfg.PrivateKeyPEM = string(pem)
	}
	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// --- Domain and use cases -----------------------------------------------
	engineCfg := service.DefaultConfig()
	engineCfg.OracleTimeout = cfg.Oracle.Timeout
	engine := service.NewEngine(engineCfg, oracle, logger)

	userRepo := pgRepo.NewUserRepo(pool)
	profileRepo := pgRepo.NewProfileRepo(pool)
	ledgerRepo := pgRepo.NewLedgerRepo(pool)
	willRepo := pgRepo.NewWillRepo(pool)
	contactRepo := pgRepo.NewContactRepo(pool)
	vaultRepo := pgRepo.NewVaultRepo(pool)

	handler := rest.NewHandler(rest.Deps{
		RegisterUser: usecase.NewRegisterUserUseCase(userRepo, jwtService, publisher),
		LoginUser:    usecase.NewLoginUserUseCase(userRepo, jwtService),
		SaveProfile:  usecase.NewSaveProfileUseCase(profileRepo, engine, publisher),
		GetProfile:   usecase.NewGetProfileUseCase(profileRepo),
		ChatAdvisor:  usecase.NewChatAdvisorUseCase(profileRepo, advisor, logger),
		Ledger:       usecase.NewLedgerUseCase(ledgerRepo),
		Will:         usecase.NewWillUseCase(willRepo, userRepo, publisher),
		Contacts:     usecase.NewContactUseCase(contactRepo, publisher, logger),
		Snapshot: usecase.NewRetrieveSnapshotUseCase(
			contactRepo, profileRepo, snapshotCache, publisher, logger, cfg.Redis.SnapshotTTL),
		Vault: usecase.NewVaultUseCase(vaultRepo),
		Readiness: func(ctx context.Context) error {
			return postgres.HealthCheck(ctx, pool)
		},
		Metrics: metricsHandler,
	})

	// --- HTTP server --------------------------------------------------------
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	chain := middleware.Logging(logger)(
		middleware.RateLimit(middleware.NewTokenBucket(cfg.RateLimit))(
			auth.Middleware(jwtService, rest.PublicPrefixes())(mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           chain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("legacy planner stopped")
}
