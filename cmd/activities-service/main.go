// Package main запускает HTTP-сервис записи на внеклассные активности.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activities-service/internal/config"
	httpapi "activities-service/internal/http"
	"activities-service/internal/observability"
	"activities-service/internal/repository"
	"activities-service/internal/service"
)

func main() {
	// Чтение конфигурации из ENV и .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// 1. Начальные данные
	seed := repository.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = repository.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("failed to load seed: %v", err)
		}
	}

	// 2. Хранилище
	store, err := repository.NewMemoryStore(seed, repository.WithCapacityEnforcement(cfg.EnforceCapacity))
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	publishRosterSizes(store, logger)

	// 3. Сервис и HTTP-обработчик
	activityService := service.NewActivityService(store, logger)
	handler := httpapi.NewHandler(activityService, logger, httpapi.Options{
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.Int("activities", len(seed)),
			slog.Bool("enforce_capacity", cfg.EnforceCapacity),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}

// publishRosterSizes выставляет стартовые значения gauge участников.
func publishRosterSizes(store *repository.MemoryStore, logger *slog.Logger) {
	catalog, err := store.List(context.Background())
	if err != nil {
		logger.Warn("failed to read initial rosters", slog.Any("err", err))
		return
	}
	for _, e := range catalog {
		observability.SetParticipants(e.Name, len(e.Participants))
	}
	logger.Debug("initial rosters published", slog.Any("activities", catalog.Names()))
}
