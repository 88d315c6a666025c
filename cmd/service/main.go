package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "quickhaul/internal/app"
	"quickhaul/internal/handlers/rest/account_get"
	"quickhaul/internal/handlers/rest/account_patch"
	"quickhaul/internal/handlers/rest/account_post"
	"quickhaul/internal/handlers/rest/deliveries_get"
	"quickhaul/internal/handlers/rest/delivery_advance_post"
	"quickhaul/internal/handlers/rest/delivery_cancel_post"
	"quickhaul/internal/handlers/rest/delivery_get"
	"quickhaul/internal/handlers/rest/delivery_post"
	"quickhaul/internal/handlers/rest/delivery_status_patch"
	"quickhaul/internal/handlers/rest/healthcheck_head"
	"quickhaul/internal/handlers/rest/ping_get"
	"quickhaul/internal/handlers/rest/session_delete"
	"quickhaul/internal/handlers/rest/session_post"
	"quickhaul/internal/pkg/config"
	"quickhaul/internal/pkg/dotenv"
	"quickhaul/internal/pkg/grpcclient"
	"quickhaul/internal/pkg/kafka"
	metrics_system "quickhaul/internal/pkg/metrics"
	"quickhaul/internal/pkg/middlewares/auth"
	"quickhaul/internal/pkg/middlewares/graceful_shutdown"
	"quickhaul/internal/pkg/middlewares/metrics"
	"quickhaul/internal/pkg/middlewares/rate_limiter"
	"quickhaul/internal/pkg/middlewares/timeout"
	"quickhaul/internal/pkg/postgres"
	"quickhaul/internal/pkg/redisclient"
	"quickhaul/pkg/logger"
	"quickhaul/pkg/logger/zap_adapter"
	"quickhaul/pkg/token_bucket"
)

// сколько живёт ведро клиента без запросов
const rateLimiterIdleTTL = 10 * time.Minute

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(
		logger.NewField("app", "quickhaul"),
	)

	mainLog.Info("starting quickhaul service")

	err = run(context.Background(), cfg, mainLog)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx специально не наследуются от ctx сигналов
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	err = postgres.Migrate(ctx, log, pool)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redisclient.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.Routing)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	if conn != nil {
		defer func() {
			if err := conn.Close(); err != nil {
				runLog.Error("failed to close gRPC connection", logger.NewField("error", err))
			}
		}()
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, log, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofShutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofShutdownErr = pprofServer.Shutdown(shutdownCtx)
		if pprofShutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofShutdownErr))
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofShutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// задачи остановились вместе с ctx
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	readiness healthcheck_head.Pinger,
	cfg config.HTTPServer,
) http.Handler {
	limiter := token_bucket.NewKeyed(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterIdleTTL)

	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, cfg.TrustProxyHeaders, limiter))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, readiness)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/accounts", account_post.New(log, app.ServiceAccount)).Methods(http.MethodPost)
	router.Handle("/sessions", session_post.New(log, app.ServiceAccount)).Methods(http.MethodPost)

	// остальное только с сессией
	protected := router.NewRoute().Subrouter()
	protected.Use(auth.Middleware(log, app.ServiceAccount))

	protected.Handle("/sessions", session_delete.New(log, app.ServiceAccount)).Methods(http.MethodDelete)
	protected.Handle("/accounts/{id}", account_get.New(log, app.ServiceAccount)).Methods(http.MethodGet)
	protected.Handle("/accounts/{id}", account_patch.New(log, app.ServiceAccount)).Methods(http.MethodPatch)

	protected.Handle("/deliveries", delivery_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)
	protected.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	protected.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	protected.Handle("/deliveries/{id}/status", delivery_status_patch.New(log, app.ServiceDelivery)).Methods(http.MethodPatch)
	protected.Handle("/deliveries/{id}/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)
	protected.Handle("/deliveries/{id}/advance", delivery_advance_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
