package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/api/middleware"
	"github.com/feral-file/ff-marketplace/internal/api/rest"
	"github.com/feral-file/ff-marketplace/internal/api/server"
	"github.com/feral-file/ff-marketplace/internal/catalog"
	"github.com/feral-file/ff-marketplace/internal/config"
	"github.com/feral-file/ff-marketplace/internal/dedup"
	"github.com/feral-file/ff-marketplace/internal/identity"
	"github.com/feral-file/ff-marketplace/internal/issuance"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/messaging"
	"github.com/feral-file/ff-marketplace/internal/mint"
	"github.com/feral-file/ff-marketplace/internal/ownership"
	"github.com/feral-file/ff-marketplace/internal/payment"
	"github.com/feral-file/ff-marketplace/internal/providers/crossmint"
	"github.com/feral-file/ff-marketplace/internal/providers/jetstream"
	"github.com/feral-file/ff-marketplace/internal/providers/publicrest"
	"github.com/feral-file/ff-marketplace/internal/purchase"
	"github.com/feral-file/ff-marketplace/internal/store"
	"github.com/feral-file/ff-marketplace/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Marketplace API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(ctx, db, cfg.Database.InstallProcedures); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Bool("install_procedures", cfg.Database.InstallProcedures),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	healthChecks := []rest.HealthCheck{
		{Name: "database", Check: dataStore.Ping},
	}

	// Duplicate suppression and rate limiting share Redis when configured
	dedupConfig := dedup.Config{Window: cfg.Dedup.Window, Retention: cfg.Dedup.Retention}
	syncGuard := dedup.NewMemoryGuard(dedupConfig)
	walletGuard := dedup.NewMemoryGuard(dedupConfig)
	var limiter adapter.RedisRateLimiter
	if cfg.Redis.Addr != "" {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error(err, zap.String("component", "redis"))
			}
		}()

		syncGuard = dedup.NewRedisGuard(redisClient.Cmdable(), dedupConfig, cfg.Dedup.KeyPrefix+"auth-sync:")
		walletGuard = dedup.NewRedisGuard(redisClient.Cmdable(), dedupConfig, cfg.Dedup.KeyPrefix+"update-user-wallet:")
		if cfg.RateLimit.Enabled {
			limiter = redisClient.NewRateLimiter()
		}
		healthChecks = append(healthChecks, rest.HealthCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		})
		logger.InfoCtx(ctx, "Using Redis for duplicate suppression", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.WarnCtx(ctx, "Redis not configured, duplicate suppression is per instance")
	}

	// Event publisher
	var publisher messaging.Publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create event publisher", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Publishing events to NATS", zap.String("stream", cfg.NATS.StreamName))
	}
	defer publisher.Close()

	// Identity directory
	var directory identity.Directory
	switch cfg.Identity.Provider {
	case "firebase":
		firebaseAuth, err := adapter.NewFirebaseAuth(ctx, cfg.Identity.ProjectID, cfg.Identity.CredentialsFile)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize firebase auth", zap.Error(err))
		}
		directory = identity.NewFirebaseDirectory(firebaseAuth)
	default:
		directory = identity.NewPostgresDirectory(dataStore)
	}

	// Upstream clients
	crossmintClient := crossmint.NewClient(crossmint.Config{
		BaseURL: cfg.Crossmint.BaseURL,
		APIKey:  cfg.Crossmint.APIKey,
		Timeout: cfg.Crossmint.Timeout,
	})
	gateway := mint.NewGateway(mint.Config{
		Mode:                   cfg.Mint.Mode,
		DevCertificateFallback: cfg.Mint.DevCertificateFallback,
		SimulatedDelay:         cfg.Mint.SimulatedDelay,
	}, crossmintClient, clock)

	var publicClient publicrest.Client
	if cfg.PublicREST.URL != "" {
		publicClient = publicrest.NewClient(adapter.NewHTTPClient(cfg.PublicREST.Timeout), cfg.PublicREST.URL, cfg.PublicREST.AnonKey)
	} else {
		logger.WarnCtx(ctx, "Public REST tier not configured, by-id fallback and not-found samples are disabled")
	}

	var payments payment.Processor
	if cfg.Payments.Enabled {
		payments = payment.NewProcessor(crossmintClient, dataStore, cfg.Payments.Asset)
	}

	// Services
	binder := wallet.NewBinder(dataStore)
	ledger := ownership.NewLedger(dataStore)
	deps := rest.Dependencies{
		Identity:    identity.NewReconciler(directory, dataStore, binder),
		Wallets:     binder,
		Purchases:   purchase.NewService(catalog.NewResolver(dataStore, publicClient), payments, gateway, ledger, publisher, clock),
		Orphans:     ownership.NewOrphanReconciler(dataStore),
		Issuance:    issuance.NewService(dataStore, gateway, publisher, jsonAdapter, clock, cfg.Server.PublicBaseURL),
		SyncGuard:   syncGuard,
		WalletGuard: walletGuard,
		Clock:       clock,
		Health:      healthChecks,
	}

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			KeyPrefix:         cfg.Dedup.KeyPrefix + "ratelimit:",
		},
	}, deps, limiter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// The original ctx is canceled at this point
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
