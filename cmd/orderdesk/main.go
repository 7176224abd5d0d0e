package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/config"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/service"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/infra/httpx"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/infra/lazy"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/infra/sqlite"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/infra/twilio"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/schedule"
	"github.com/hoteldesk/orderdesk/internal/pkg/cache"
	"github.com/hoteldesk/orderdesk/internal/pkg/telemetry"
)

// connectRetryInterval is the fixed backoff between attempts to reach the
// store at startup. Retries continue until the store answers or the
// process is told to stop; the HTTP server is up the whole time, with
// /health reporting the store as disconnected.
const connectRetryInterval = 5 * time.Second

func main() {
	telemetry.InitLogger()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The lazy store lets everything wire up and serve before the database
	// has answered; operations fail with a store error until it attaches.
	store := lazy.NewStore()
	defer store.Close()

	var c cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.NewRedisCache(cfg.Redis.Addr, "orderdesk")
	}

	svc := service.New(store)
	notifier := twilio.New(twilio.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		From:       cfg.Twilio.From,
		To:         cfg.Twilio.To,
	})

	sched, err := schedule.New(schedule.NewJobs(svc, store, notifier))
	if err != nil {
		slog.Error("failed to build scheduler", "error", err)
		os.Exit(1)
	}

	handler := httpx.NewHandler(svc, c)
	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httpx.NewRouter(handler),
	}

	go func() {
		slog.Info("order backend running", "addr", cfg.HTTP.Addr, "db", cfg.Database.Path)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	// Connect in the background; the scheduler only starts once the store
	// is real so its first firing cannot hit ErrNotConnected.
	go func() {
		backing := openStoreWithRetry(ctx, cfg.Database.Path)
		if backing == nil {
			return
		}
		store.Attach(backing)
		slog.Info("store connected", "db", cfg.Database.Path)
		sched.Start()
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	// Let an in-flight job finish before the store goes away.
	<-sched.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}

// openStoreWithRetry keeps trying to open the store every
// connectRetryInterval until it succeeds or ctx is cancelled. Returns nil
// only on cancellation.
func openStoreWithRetry(ctx context.Context, path string) *sqlite.Store {
	for {
		store, err := sqlite.Open(path)
		if err == nil {
			return store
		}
		slog.Error("store unavailable, retrying", "path", path, "retry_in", connectRetryInterval, "error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(connectRetryInterval):
		}
	}
}
