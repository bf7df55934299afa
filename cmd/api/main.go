package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"news-proxy/internal/config"
	"news-proxy/internal/infra/provider"
	"news-proxy/internal/observability/logging"
	"news-proxy/internal/observability/tracing"
	newsUC "news-proxy/internal/usecase/news"

	hhttp "news-proxy/internal/handler/http"
	"news-proxy/internal/handler/http/middleware"
	hnews "news-proxy/internal/handler/http/news"
	"news-proxy/internal/handler/http/requestid"

	_ "news-proxy/docs" // swagger docs
)

// @title           news-proxy API
// @version         1.0
// @description     Proxy that searches an external news provider and returns normalized articles.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

func main() {
	logger := initLogger()

	newsCfg := loadNewsConfig(logger)
	serverCfg := config.LoadServerConfig()

	handler := setupServer(logger, newsCfg, serverCfg)
	runServer(logger, handler, serverCfg)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadNewsConfig loads the provider settings. An invalid configuration is
// fatal; a missing credential is only reported, every search then fails with 500.
func loadNewsConfig(logger *slog.Logger) config.NewsConfig {
	cfg, err := config.LoadNewsConfig()
	if err != nil {
		logger.Error("failed to load news configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if !cfg.HasCredential() {
		logger.Error("news provider API key not configured; searches will fail",
			slog.String("provider", cfg.Provider),
			slog.String("env", cfg.CredentialEnv()))
	}

	logger.Info("news provider configured",
		slog.String("provider", cfg.Provider),
		slog.String("language", cfg.Language),
		slog.String("country", cfg.Country),
		slog.Int("result_limit", cfg.ResultLimit),
		slog.Duration("timeout", cfg.Timeout),
		slog.Bool("base_url_override", cfg.BaseURL != ""))
	return cfg
}

// setupServer builds the provider, the use case and the routed handler.
func setupServer(logger *slog.Logger, newsCfg config.NewsConfig, serverCfg config.ServerConfig) http.Handler {
	p, err := provider.New(newsCfg, nil)
	if err != nil {
		logger.Error("failed to create news provider", slog.Any("error", err))
		os.Exit(1)
	}
	svc := newsUC.NewService(newsCfg, p)

	mux := http.NewServeMux()
	hnews.Register(mux, svc)

	// ヘルスチェック・運用エンドポイント
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Provider:             newsCfg.Provider,
		CredentialConfigured: newsCfg.HasCredential(),
		Version:              serverCfg.Version,
	})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(logger, mux, serverCfg)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Tracing → Metrics → Logging → Recovery
func applyMiddleware(logger *slog.Logger, handler http.Handler, serverCfg config.ServerConfig) http.Handler {
	corsConfig, err := middleware.NewCORSConfig(
		serverCfg.AllowedOrigins,
		serverCfg.CORSMaxAge,
		&middleware.SlogAdapter{Logger: logger},
	)
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.Validator.GetAllowedOrigins()),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Any("allowed_headers", corsConfig.AllowedHeaders),
		slog.Int("max_age", corsConfig.MaxAge))

	// Recovery sits innermost so the access log and metrics see the 500.
	return hhttp.Chain(handler,
		middleware.CORS(*corsConfig),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, serverCfg config.ServerConfig) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", serverCfg.Addr),
			slog.String("version", serverCfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		// in-flight requests drain until ShutdownTimeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
