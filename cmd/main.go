package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/boardroom-ai/boardroom/internal/adapters/http/api"
	"github.com/boardroom-ai/boardroom/internal/adapters/llm"
	"github.com/boardroom-ai/boardroom/internal/adapters/roster"
	"github.com/boardroom-ai/boardroom/internal/app"
	"github.com/boardroom-ai/boardroom/internal/config"
	"github.com/boardroom-ai/boardroom/pkg/logger"
	"github.com/boardroom-ai/boardroom/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 120 * time.Second // model calls can run long
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
	rosterMetricsInterval = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	gateway, err := llm.New(cfg.AnthropicAPIKey,
		llm.WithModel(cfg.Model),
		llm.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		os.Stderr.WriteString("failed to create model gateway: " + err.Error() + "\n")
		return
	}

	source, err := roster.NewSource(cfg.RosterURL)
	if err != nil {
		os.Stderr.WriteString("failed to create roster source: " + err.Error() + "\n")
		return
	}
	cache := roster.NewCache(source,
		roster.WithTTL(time.Duration(cfg.RosterTTLSeconds)*time.Second),
	)

	svc := app.New(
		app.WithLogger(log),
		app.WithModel(gateway),
		app.WithRoster(cache),
	)

	// Warm the roster so the first team request does not pay the fetch;
	// a failure here just means the first read retries.
	cache.Records(ctx)

	go startSystemMetricsUpdater(ctx)
	go startRosterMetricsUpdater(ctx, svc)

	mux := http.NewServeMux()
	api.NewServer(svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr), logger.String("model", gateway.Model()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater periodically refreshes process-level gauges.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.Alloc)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		}
	}
}

// startRosterMetricsUpdater periodically refreshes roster gauges from the
// service stats.
func startRosterMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(rosterMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			publishRosterStats(svc.Stats())
		}
	}
}

// publishRosterStats pushes every roster gauge the service reports.
func publishRosterStats(stats map[string]any) {
	if size, ok := stats["rosterSize"].(int); ok {
		metrics.UpdateRosterSize(size)
	}
	if age, ok := stats["rosterAgeSeconds"].(float64); ok {
		metrics.UpdateRosterAge(age)
	}
}
