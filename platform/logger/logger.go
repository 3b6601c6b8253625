// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCountry returns a logger with the country code attached.
func (l *Logger) WithCountry(code string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("country", code)),
	}
}

// FetchEvent logs a completed Overpass fetch.
func (l *Logger) FetchEvent(country string, elements int, cached bool, elapsed time.Duration) {
	l.Info("overpass_fetch",
		slog.String("country", country),
		slog.Int("elements", elements),
		slog.Bool("cached", cached),
		slog.Float64("elapsed_ms", float64(elapsed.Milliseconds())),
	)
}

// CacheError logs a non-fatal cache failure.
func (l *Logger) CacheError(operation string, err error) {
	l.Warn("cache_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// ReportWritten logs a generated country report. Callers attach the country
// via WithCountry.
func (l *Logger) ReportWritten(path string, checked, flagged int) {
	l.Info("report_written",
		slog.String("path", path),
		slog.Int("numbers_checked", checked),
		slog.Int("records_flagged", flagged),
	)
}
