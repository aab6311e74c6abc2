package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/hours/internal/config"
	"github.com/sadopc/hours/internal/log"
	"github.com/sadopc/hours/internal/metrics"
	"github.com/sadopc/hours/internal/refresh"
	"github.com/sadopc/hours/internal/store"
)

// session holds everything one command invocation needs.
type session struct {
	cfg      *config.Config
	logger   *log.Logger
	store    *store.Store
	metrics  *metrics.Metrics
	closeLog func() error
}

func openSession(g *globalFlags) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := log.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	s, err := store.New(cfg.DBPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Debug("session opened", "db", cfg.DBPath)
	return &session{
		cfg:      cfg,
		logger:   logger.WithComponent("cli"),
		store:    s,
		metrics:  metrics.New(),
		closeLog: closeLog,
	}, nil
}

// Close writes the metrics textfile and releases the store and log file.
func (s *session) Close() error {
	err := s.metrics.WriteFile(s.cfg.MetricsFile)
	if err != nil {
		s.logger.Warn("write metrics", "error", err)
	}
	return errors.Join(err, s.store.Close(), s.closeLog())
}

func (s *session) refresher() *refresh.Refresher {
	return refresh.New(s.store, refresh.Providers{
		TogglAPIURL:     s.cfg.TogglAPIURL,
		TogglReportsURL: s.cfg.TogglReportsURL,
		Logger:          s.logger,
	}, s.logger, s.metrics)
}

func (s *session) refresh(ctx context.Context, now time.Time) (int, error) {
	return s.refresher().Run(ctx, now)
}

// refreshRequired reports whether the cache is older than the configured
// threshold.
func (s *session) refreshRequired(now time.Time) (bool, error) {
	at, err := s.store.RefreshedAt()
	if err != nil {
		return false, err
	}
	return refresh.Required(now, at, s.cfg.RefreshThreshold), nil
}
