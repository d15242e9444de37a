package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/exchange_rate_board/internal/core/services"
	"github.com/SscSPs/exchange_rate_board/internal/handlers"
	"github.com/SscSPs/exchange_rate_board/internal/middleware"
	"github.com/SscSPs/exchange_rate_board/internal/platform/config"
	"github.com/SscSPs/exchange_rate_board/internal/platform/metrics"
	"github.com/SscSPs/exchange_rate_board/internal/repositories/database/pgsql"
	"github.com/SscSPs/exchange_rate_board/internal/utils"
	"github.com/SscSPs/exchange_rate_board/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Exchange Rate Board API
// @version 1.0
// @description Records and serves the current buy/sell exchange rate and its recent history.

// @host localhost:5000
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	appMetrics := metrics.NewDefault()
	createLimiter, err := middleware.NewMemoryLimiter(cfg.CreateRateLimit)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(),
		middleware.PrometheusMiddleware(appMetrics),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	handlers.RegisterRoutes(r, handlers.RouteDeps{
		Config:           cfg,
		Services:         services.NewServiceContainer(repos, appMetrics),
		Formatter:        utils.NewLocaleRateFormatter(cfg.DisplayLocation),
		Metrics:          appMetrics,
		CreateMiddleware: []gin.HandlerFunc{middleware.RateLimit(createLimiter)},
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
