package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"ftts-booking/internal/booking"
	"ftts-booking/internal/booking/service"
	"ftts-booking/internal/crm/gateway"
	"ftts-booking/internal/nsa"
	"ftts-booking/internal/platform/config"
	"ftts-booking/internal/platform/httpserver"
	"ftts-booking/internal/platform/logger"
	"ftts-booking/internal/platform/metrics"
	platformredis "ftts-booking/internal/platform/redis"
	sessionstore "ftts-booking/internal/session/store"
	httptransport "ftts-booking/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	crmClient, err := gateway.New(cfg.CRM.BaseURL, cfg.CRM.Token, cfg.CRM.Timeout, gateway.WithLogger(log))
	if err != nil {
		log.Error("crm gateway init failed", "error", err)
		os.Exit(1)
	}

	var sessions sessionstore.Store = sessionstore.NewMemoryStore(cfg.SessionTTL)
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = sessionstore.NewRedisStore(redisClient.Client, cfg.SessionTTL)
	}

	var queue service.NSAQueue
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres init failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}
		queue = nsa.NewQueue(db)
	}

	bookings, err := service.New(crmClient, booking.DefaultEvidenceClassifier{}, crmClient, queue,
		service.WithLogger(log), service.WithMetrics(m))
	if err != nil {
		log.Error("booking service init failed", "error", err)
		os.Exit(1)
	}

	tokens := service.NewTokenIssuer(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)

	handler := httptransport.NewHandler(bookings, sessions, tokens, m, log, cfg.NSABatchLimit)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	if queue != nil {
		go runNSABatch(ctx, bookings, cfg, log)
	}

	go func() {
		log.Info("starting ftts-booking", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// runNSABatch periodically moves resolved NSA drafts to standard-test-booked.
func runNSABatch(ctx context.Context, bookings *service.Service, cfg config.Config, log *slog.Logger) {
	ticker := time.NewTicker(cfg.NSABatchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bookings.UpdateNSABookings(ctx, cfg.NSABatchLimit); err != nil {
				log.ErrorContext(ctx, "nsa batch update failed", "error", err)
			}
		}
	}
}
