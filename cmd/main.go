package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tripdeck/concierge/internal/application/service"
	"github.com/tripdeck/concierge/internal/config"
	amadeusclient "github.com/tripdeck/concierge/internal/infrastructures/amadeus/http/client"
	exchangeclient "github.com/tripdeck/concierge/internal/infrastructures/exchangerate/http/client"
	nominatimclient "github.com/tripdeck/concierge/internal/infrastructures/nominatim/http/client"
	serpapiclient "github.com/tripdeck/concierge/internal/infrastructures/serpapi/http/client"
	"github.com/tripdeck/concierge/internal/infrastructures/tracing"
	weatherclient "github.com/tripdeck/concierge/internal/infrastructures/weathergov/http/client"
	"github.com/tripdeck/concierge/internal/secrets"
	"github.com/tripdeck/concierge/internal/transport/http/handlers"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	tp, err := tracing.Init("trip-concierge", cfg.Env, cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	resolver := secrets.NewEnvResolver()

	serpapi := serpapiclient.NewClient(cfg.SerpAPI.BaseURL, resolver, cfg.SerpAPI.Timeout)
	session := amadeusclient.NewSession(cfg.Amadeus.BaseURL, resolver, cfg.Amadeus.Timeout)
	gds := amadeusclient.NewClient(session, cfg.Amadeus.Timeout)
	exchange := exchangeclient.NewClient(cfg.Exchange.BaseURL, resolver, cfg.Exchange.Timeout)
	geocoder := nominatimclient.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.Spacing, cfg.Geocoder.Timeout)
	weather := weatherclient.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout)

	conciergeService := service.NewConciergeService(log, serpapi, gds, serpapi, gds, gds, serpapi, exchange, geocoder, weather)

	mux := http.NewServeMux()
	handler := handlers.NewConciergeHandler(log, conciergeService, cfg.HTTP.WriteTimeout)
	handler.Register(mux)

	addr := cfg.HTTP.Address()
	log.Info("trip-concierge starting", zap.String("http_addr", addr))

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
