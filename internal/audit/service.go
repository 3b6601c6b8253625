// Package audit orchestrates per-country fetch, validation and report
// output.
package audit

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arrival-spring/osm-phones-sub000/internal/osm"
	"github.com/arrival-spring/osm-phones-sub000/internal/phone"
	"github.com/arrival-spring/osm-phones-sub000/internal/report"
	"github.com/arrival-spring/osm-phones-sub000/platform/config"
	"github.com/arrival-spring/osm-phones-sub000/platform/logger"
)

// Fetcher supplies phone-tagged records per country.
type Fetcher interface {
	FetchCountry(ctx context.Context, country string) ([]osm.Record, error)
}

// Config is the subset of application configuration the audit run needs.
type Config interface {
	config.AuditConfig
	config.ReportConfig
}

// Stats summarizes one audit run.
type Stats struct {
	Countries      int
	NumbersChecked int
	RecordsFlagged int
}

// Service runs the audit across the configured countries.
type Service struct {
	fetcher    Fetcher
	exclusions *phone.Exclusions
	renderer   *report.Renderer
	cfg        Config
	log        *logger.Logger
}

// New creates the audit service.
func New(fetcher Fetcher, exclusions *phone.Exclusions, renderer *report.Renderer, cfg Config, log *logger.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		exclusions: exclusions,
		renderer:   renderer,
		cfg:        cfg,
		log:        log,
	}
}

// Run audits every configured country. Countries are independent, so they
// are processed in parallel; profiles and exclusions are shared read-only.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	if err := os.MkdirAll(s.cfg.GetOutputDir(), 0o755); err != nil {
		return Stats{}, fmt.Errorf("create output dir: %w", err)
	}

	countries := s.cfg.GetCountries()
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.GetConcurrency())

	var mu sync.Mutex
	stats := Stats{Countries: len(countries)}
	for _, country := range countries {
		country := country
		group.Go(func() error {
			checked, flagged, err := s.runCountry(ctx, country)
			if err != nil {
				return fmt.Errorf("country %s: %w", country, err)
			}
			mu.Lock()
			stats.NumbersChecked += checked
			stats.RecordsFlagged += flagged
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (s *Service) runCountry(ctx context.Context, country string) (int, int, error) {
	log := s.log.WithCountry(country)

	records, err := s.fetcher.FetchCountry(ctx, country)
	if err != nil {
		return 0, 0, err
	}

	profile := phone.ProfileFor(country)
	items, checked := phone.CheckItems(records, profile, s.exclusions)

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, country, items, checked); err != nil {
		return 0, 0, err
	}
	path := filepath.Join(s.cfg.GetOutputDir(), strings.ToLower(country)+".html")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, 0, fmt.Errorf("write report: %w", err)
	}

	log.ReportWritten(path, checked, len(items))
	return checked, len(items), nil
}
