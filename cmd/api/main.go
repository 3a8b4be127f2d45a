package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"news-app/internal/infra/adapter/persistence/memory"
	"news-app/internal/observability/logging"
	"news-app/internal/observability/metrics"
	"news-app/internal/observability/tracing"
	"news-app/pkg/config"
	"news-app/web"

	artUC "news-app/internal/usecase/article"

	hhttp "news-app/internal/handler/http"
	harticle "news-app/internal/handler/http/article"
	"news-app/internal/handler/http/middleware"
	"news-app/internal/handler/http/requestid"

	_ "news-app/docs" // swagger docs
)

// Version is reported by the health endpoint and the swagger document.
const Version = "1.0.0"

const serviceName = "news-app"

// @title           News API
// @version         1.0.0
// @description     インメモリのニュースカタログを提供する小さな JSON REST API
// @description     記事一覧、記事詳細、ヘルスチェック、フロントエンドの静的ファイルを配信します。

// @BasePath  /

func main() {
	startedAt := time.Now()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel)

	if err := run(context.Background(), logger, cfg, startedAt); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger initializes the JSON logger and installs it as the slog default.
func initLogger(level string) *slog.Logger {
	logger := logging.New(os.Stdout, level)
	slog.SetDefault(logger)
	return logger
}

// run wires the application and serves until SIGINT or SIGTERM.
func run(ctx context.Context, logger *slog.Logger, cfg *config.ServerConfig, startedAt time.Time) error {
	shutdownTracer := tracing.InitTracerProvider(serviceName, Version)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			logger.Warn("tracer provider shutdown failed", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(ctx, logger, cfg, startedAt)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runServer(ctx, logger, cfg, handler)
}

// setupServer builds the catalog, routes, and middleware chain.
func setupServer(ctx context.Context, logger *slog.Logger, cfg *config.ServerConfig, startedAt time.Time) (http.Handler, error) {
	repo, err := memory.NewArticleRepo(memory.SeedArticles(startedAt))
	if err != nil {
		return nil, fmt.Errorf("build article catalog: %w", err)
	}
	artSvc := artUC.Service{Repo: repo}

	total, err := artSvc.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	metrics.SetArticlesTotal(total)
	logger.Info("article catalog loaded", slog.Int("articles", total))

	assets, err := web.Open(cfg.PublicDir)
	if err != nil {
		return nil, err
	}
	if cfg.PublicDir != "" {
		logger.Info("serving static files from disk", slog.String("public_dir", cfg.PublicDir))
	}

	corsConfig, err := middleware.NewCORSConfig(cfg.AllowedOrigins, logger)
	if err != nil {
		return nil, fmt.Errorf("CORS configuration: %w", err)
	}

	mux := setupRoutes(logger, artSvc, assets, startedAt)
	return applyMiddleware(logger, mux, corsConfig), nil
}

// setupRoutes registers all HTTP routes.
// The method-less "/" pattern is the least specific and catches everything
// else: static files first, then the "Route not found" envelope.
func setupRoutes(logger *slog.Logger, artSvc artUC.Service, assets fs.FS, startedAt time.Time) *http.ServeMux {
	site := hhttp.NewSiteHandler(assets)

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", site.Landing())
	health := &hhttp.HealthHandler{Version: Version, StartedAt: startedAt}
	mux.Handle("GET /api/health", health)
	mux.Handle("GET /api/health/{$}", health)
	harticle.Register(mux, artSvc, logger)

	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("/", site)
	return mux
}

// applyMiddleware wraps the handler with middleware chain.
// Middleware order: CORS → Request ID → Tracing → Logging → Metrics → Recovery
func applyMiddleware(logger *slog.Logger, handler http.Handler, corsConfig *middleware.CORSConfig) http.Handler {
	logger.Info("CORS enabled",
		slog.Int("allowed_origins_count", len(corsConfig.Validator.GetAllowedOrigins())),
		slog.Any("allowed_origins", corsConfig.Validator.GetAllowedOrigins()),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Any("allowed_headers", corsConfig.AllowedHeaders),
		slog.Int("max_age", corsConfig.MaxAge))

	// Recover sits inside Logging and Metrics so a recovered panic is
	// logged and counted with its 500.
	return hhttp.Chain(handler,
		middleware.CORS(*corsConfig),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.Recover(logger),
	)
}

// runServer listens on the configured address and serves until ctx is done.
func runServer(ctx context.Context, logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	logStartup(logger, cfg.BaseURL())
	return serve(ctx, logger, srv, ln, cfg.ShutdownTimeout)
}

// serve runs srv on ln and shuts it down gracefully once ctx is cancelled.
// A serve failure cancels the group and triggers the same shutdown path.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

func logStartup(logger *slog.Logger, baseURL string) {
	logger.Info("server listening",
		slog.String("url", baseURL),
		slog.String("version", Version))
	logger.Info("health check available", slog.String("url", baseURL+"/api/health"))
	logger.Info("news API available", slog.String("url", baseURL+"/api/news"))
}
