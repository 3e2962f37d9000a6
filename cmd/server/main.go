package main

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/ridwanfathin/invoice-builder-service/docs"
	"github.com/ridwanfathin/invoice-builder-service/internal/config"
	"github.com/ridwanfathin/invoice-builder-service/internal/database"
	"github.com/ridwanfathin/invoice-builder-service/internal/handler"
	"github.com/ridwanfathin/invoice-builder-service/internal/logger"
	"github.com/ridwanfathin/invoice-builder-service/internal/metrics"
	"github.com/ridwanfathin/invoice-builder-service/internal/middleware"
	"github.com/ridwanfathin/invoice-builder-service/internal/output"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
	"github.com/ridwanfathin/invoice-builder-service/internal/repository"
	"github.com/ridwanfathin/invoice-builder-service/internal/server"
	"github.com/ridwanfathin/invoice-builder-service/internal/service"
	"github.com/ridwanfathin/invoice-builder-service/internal/storage"
	"github.com/ridwanfathin/invoice-builder-service/internal/task"
)

// @title Invoice Builder API
// @version 1.0
// @description Build, render, print and save invoices.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(logger.Config{
		ServiceName: "invoice-builder",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry, metrics.Config{ServiceName: "invoice-builder", Environment: cfg.Environment})

	pool := task.NewPool(cfg.MaxWorkers)
	renderer := render.NewRenderer()

	appServer := server.NewServer(cfg, server.Options{
		Logger:   zl,
		Registry: registry,
		Metrics:  m,
		Pool:     pool,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		userRepo    repository.UserRepository    = repository.NewMemoryUserRepository()
		invoiceRepo repository.InvoiceRepository = repository.NewMemoryInvoiceRepository()
		draftRepo   repository.DraftRepository   = repository.NewMemoryDraftRepository()
		archive     storage.DocumentArchive
	)

	if cfg.PostgresURL != "" {
		db, err := database.NewPostgresDB(ctx, cfg.PostgresURL)
		if err != nil {
			zl.Fatal("failed to connect to postgres", zap.Error(err))
		}
		appServer.OnShutdown(db.Close)
		userRepo = repository.NewPostgresUserRepository(db.GetPool())
		invoiceRepo = repository.NewPostgresInvoiceRepository(db.GetPool())
		zl.Info("using postgres for users and invoices")
	} else {
		zl.Warn("POSTGRES_DB_URL not set, users and invoices are kept in memory")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Fatal("failed to connect to redis", zap.Error(err))
		}
		appServer.OnShutdown(func() { _ = rdb.Close() })
		draftRepo = repository.NewRedisDraftRepository(rdb, cfg.DraftTTL)
		zl.Info("using redis for drafts", zap.Duration("ttl", cfg.DraftTTL))
	} else {
		zl.Warn("REDIS_ADDR not set, drafts are kept in memory")
	}

	s3cfg := storage.Config{
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		AccessKeySecret: cfg.S3AccessKeySecret,
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
	}
	if s3cfg.Enabled() {
		uploader, err := storage.NewS3Uploader(&s3cfg)
		if err != nil {
			zl.Warn("document archive disabled", zap.Error(err))
		} else {
			archive = uploader
		}
	}

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:             userRepo,
		Logger:               zl,
		JWTSecret:            cfg.JWTSecret,
		JWTAccessExpiration:  cfg.JWTAccessExpiration,
		JWTRefreshExpiration: cfg.JWTRefreshExpiration,
	})
	invoiceService := service.NewInvoiceService(service.InvoiceServiceConfig{
		Repo:     invoiceRepo,
		Pool:     pool,
		Renderer: renderer,
		Archive:  archive,
		Metrics:  m,
		Logger:   zl,
	})
	draftService := service.NewDraftService(service.DraftServiceConfig{
		Drafts:   draftRepo,
		Invoices: invoiceService,
		Logger:   zl,
	})

	authMiddleware := middleware.AuthMiddleware(authService)
	router := appServer.GetRouter()

	handler.NewAuthHandler(authService).RegisterRoutes(router, authMiddleware)
	handler.NewCurrencyHandler().RegisterRoutes(router)
	handler.NewInvoiceHandler(invoiceService).RegisterRoutes(router, authMiddleware)
	handler.NewDraftHandler(handler.DraftHandlerConfig{
		Drafts:   draftService,
		Renderer: renderer,
		Launcher: output.NewLauncher(renderer, cfg.PrintSettleDelay),
		Printer:  output.NewPrinter(renderer, output.NewPDFViewer(), cfg.PrintSettleDelay),
		Metrics:  m,
	}).RegisterRoutes(router, authMiddleware)

	if err := appServer.Start(); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
