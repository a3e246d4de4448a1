package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/procurement-mock/internal/config"
	"github.com/mamadbah2/procurement-mock/internal/domain/models"
)

// DigestGenerator produces the periodic procurement digest.
type DigestGenerator interface {
	GenerateDigest(ctx context.Context, pageSize int) (models.Digest, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	reporting DigestGenerator
	cfg       config.DigestConfig
	logger    *zap.Logger
	format    func(models.Digest) string
}

// NewScheduler creates a new scheduler instance. Jobs run in the configured timezone,
// falling back to UTC when it cannot be loaded.
func NewScheduler(cfg config.DigestConfig, reporting DigestGenerator, format func(models.Digest) string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown digest timezone, using UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.UTC
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		reporting: reporting,
		cfg:       cfg,
		logger:    logger,
		format:    format,
	}
}

// Start registers the digest job and starts the cron loop. An empty schedule leaves
// the scheduler idle.
func (s *Scheduler) Start() error {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("digest schedule not configured, scheduler idle")
		return nil
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.RunDigest); err != nil {
		s.logger.Error("failed to schedule digest", zap.Error(err))
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// RunDigest generates and logs one digest.
func (s *Scheduler) RunDigest() {
	s.logger.Info("generating procurement digest")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	digest, err := s.reporting.GenerateDigest(ctx, s.cfg.PageSize)
	if err != nil {
		s.logger.Error("failed to generate digest", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String("variant", digest.Variant),
		zap.Int("orders", digest.Orders),
		zap.Int("line_items", digest.LineItems),
		zap.Any("status_counts", digest.StatusCounts),
		zap.Any("totals_by_currency", digest.TotalsByCurrency),
		zap.String("top_supplier", digest.TopSupplier),
		zap.Float64("top_supplier_share", digest.TopSupplierShare),
	}
	if s.format != nil {
		fields = append(fields, zap.String("summary", s.format(digest)))
	}
	s.logger.Info("procurement digest", fields...)
}
