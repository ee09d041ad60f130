package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/httpapi"
	"weather-dashboard/internal/observability"
	"weather-dashboard/internal/owm"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const serviceName = "weather-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	if config.APIKey() == "" {
		slog.Warn("missing env, dashboard will report it until set", "key", config.APIKeyEnv)
	}

	shutdownObs, promHandler, tracer := observability.SetupObservability(serviceName, cfg.OTLPEndpoint)
	defer shutdownObs()

	owmClient := owm.New(owm.Options{
		CurrentURL: cfg.CurrentWeatherURL,
		OneCallURL: cfg.OneCallURL,
		Timeout:    cfg.UpstreamTimeout,
		Transport:  observability.NewTransport(http.DefaultTransport, tracer),
	})
	builder := dashboard.NewBuilder(owmClient,
		dashboard.WithDefaultLocation(cfg.DefaultLocation),
		dashboard.WithLogger(slog.Default()),
	)

	srv := httpapi.NewServer(builder, httpapi.WithRenderHook(observability.RecordRender))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(observability.MetricsAndTracingMiddleware(tracer, serviceName))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promHandler)

	srv.RegisterRoutes(r)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("weather-dashboard started", "port", cfg.Port, "default_location", cfg.DefaultLocation)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("shutting down")
	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}
