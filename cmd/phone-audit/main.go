package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arrival-spring/osm-phones-sub000/internal/audit"
	"github.com/arrival-spring/osm-phones-sub000/internal/osm"
	"github.com/arrival-spring/osm-phones-sub000/internal/phone"
	"github.com/arrival-spring/osm-phones-sub000/internal/report"
	"github.com/arrival-spring/osm-phones-sub000/platform/config"
	"github.com/arrival-spring/osm-phones-sub000/platform/logger"
	"github.com/arrival-spring/osm-phones-sub000/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting audit", "env", cfg.Env, "countries", cfg.Countries, "output", cfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exclusions, err := loadExclusions(cfg)
	if err != nil {
		log.Error("failed to load exclusion table", "error", err)
		os.Exit(1)
	}

	cache := osm.NewCache(cfg, log)
	defer cache.Close()
	if cfg.IsCacheEnabled() {
		if err := withRetry(ctx, log, "cache connection", 5, 2*time.Second, func() error {
			return cache.Ping(ctx)
		}); err != nil {
			log.Error("failed to connect to cache", "error", err)
			os.Exit(1)
		}
		log.Info("cache connection established", "addr", cfg.RedisAddr)
	}

	renderer, err := report.NewRenderer(report.NewLocales(cfg.Locale))
	if err != nil {
		log.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}

	client := osm.NewClient(cfg, cache, log)
	service := audit.New(client, exclusions, renderer, cfg, log)

	stats, err := service.Run(ctx)
	if err != nil {
		log.Error("audit run failed", "error", err)
		os.Exit(1)
	}

	log.Info("audit complete",
		"countries", stats.Countries,
		"numbers_checked", stats.NumbersChecked,
		"records_flagged", stats.RecordsFlagged,
	)
}

func loadExclusions(cfg *config.Config) (*phone.Exclusions, error) {
	if cfg.ExclusionsFile == "" {
		return phone.DefaultExclusions(), nil
	}
	data, err := os.ReadFile(cfg.ExclusionsFile)
	if err != nil {
		return nil, fmt.Errorf("read exclusions file: %w", err)
	}
	return phone.LoadExclusions(data, validator.New())
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}
