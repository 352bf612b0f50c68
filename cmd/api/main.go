package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/extracurricular/internal/api"
	"example.com/extracurricular/internal/config"
	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/logger"
	"example.com/extracurricular/internal/observability"
	"example.com/extracurricular/internal/registry"
	httptransport "example.com/extracurricular/internal/transport/http"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	store := registry.NewMemory(registry.Seed())
	for name, activity := range store.Snapshot(context.Background()) {
		observability.SetParticipants(name, len(activity.Participants))
	}

	service := domain.NewService(store)
	handler := api.NewHandler(service)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	mux.Handle("GET /metrics", promhttp.Handler())

	chained := httptransport.Chain(mux,
		httptransport.RequestID(),
		httptransport.Logging(log),
		httptransport.CORS(cfg.CORSAllowOrigin),
	)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, chained)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("enrollment service listening", zap.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}
}
