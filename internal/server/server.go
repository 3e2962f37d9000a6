package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ridwanfathin/invoice-builder-service/internal/config"
	"github.com/ridwanfathin/invoice-builder-service/internal/metrics"
	"github.com/ridwanfathin/invoice-builder-service/internal/middleware"
	"github.com/ridwanfathin/invoice-builder-service/internal/task"
)

// shutdownTimeout bounds the drain of HTTP requests and in-flight saves
const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server for the invoice builder
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     *zap.Logger
	pool       *task.Pool
	closers    []func()
}

// Options holds the server's observability collaborators
type Options struct {
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Pool     *task.Pool
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins...))
	router.Use(middleware.RequestResponseLogger(middleware.LoggerConfig{
		Logger:    logger,
		LogBodies: cfg.LogBodies,
	}))
	router.Use(middleware.Metrics(opts.Metrics))

	server := &Server{
		router: router,
		config: cfg,
		logger: logger,
		pool:   opts.Pool,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(opts.Registry)

	return server
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// OnShutdown registers fn to run after the server has drained
func (s *Server) OnShutdown(fn func()) {
	s.closers = append(s.closers, fn)
}

// setupRoutes configures the service routes that belong to no handler
func (s *Server) setupRoutes(registry *prometheus.Registry) {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	if registry != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Swagger UI at /api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.Int("port", s.config.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-quit:
		s.logger.Info("shutting down server")
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server exited gracefully")
	return nil
}

// Shutdown stops accepting requests, waits for in-flight saves and then
// releases backends
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)

	if s.pool != nil {
		if waitErr := s.pool.Wait(ctx); waitErr != nil {
			s.logger.Warn("in-flight saves did not finish before shutdown", zap.Error(waitErr))
		}
	}

	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	return err
}
