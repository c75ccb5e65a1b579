package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/polar-risk-service/internal/domain"
	"github.com/couchcryptid/polar-risk-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// ReadingSource yields the current environmental readings.
type ReadingSource interface {
	Readings(ctx context.Context) (domain.Readings, error)
}

// Publisher forwards a finished assessment downstream.
type Publisher interface {
	Publish(ctx context.Context, a domain.Assessment) error
}

// Service computes assessments on demand and publishes them on a schedule.
type Service struct {
	source    ReadingSource
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Service. Pass a nil publisher to disable publishing.
func New(source ReadingSource, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	if publisher != nil {
		metrics.PublishEnabled.Set(1)
	}
	return &Service{
		source:    source,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once at least one assessment has succeeded.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no risk assessment has completed yet")
	}
	return nil
}

// Evaluate reads the current readings and computes a fresh assessment.
// A degenerate range aborts evaluation. Evaluate never publishes, so read
// requests stay independent of the broker.
func (s *Service) Evaluate(ctx context.Context) (domain.Assessment, error) {
	start := time.Now()

	readings, err := s.source.Readings(ctx)
	if err != nil {
		s.metrics.AssessmentErrors.Inc()
		return domain.Assessment{}, fmt.Errorf("read sensors: %w", err)
	}

	a, err := domain.Assess(readings)
	if err != nil {
		s.metrics.AssessmentErrors.Inc()
		s.logger.Error("risk assessment failed", "error", err, "readings", readings)
		return domain.Assessment{}, fmt.Errorf("invalid risk configuration: %w", err)
	}

	s.metrics.ObserveAssessment(a)
	s.ready.Store(true)
	s.logger.Debug("risk assessed",
		"risk_index", a.RiskIndex,
		"status", a.Status.String(),
		"sea_ice_concentration", readings.SeaIceConcentration,
		"drift_speed", readings.DriftSpeed,
		"wind_speed", readings.WindSpeed,
	)

	s.metrics.AssessmentDuration.Observe(time.Since(start).Seconds())
	return a, nil
}

// Run publishes an assessment immediately and then once per interval until the
// context is cancelled. It returns at once when no publisher is configured.
// Only a failure of the first evaluation is returned; later failures are logged.
func (s *Service) Run(ctx context.Context, clk clockwork.Clock, interval time.Duration) error {
	if s.publisher == nil {
		return nil
	}
	s.logger.Info("assessment publisher started", "interval", interval)

	if err := s.publishCurrent(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	ticker := clk.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("assessment publisher stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			if err := s.publishCurrent(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("scheduled assessment failed", "error", err)
			}
		}
	}
}

// publishCurrent evaluates and publishes one assessment. Publish failures are
// logged and counted but do not fail the cycle.
func (s *Service) publishCurrent(ctx context.Context) error {
	a, err := s.Evaluate(ctx)
	if err != nil {
		return err
	}
	if err := s.publisher.Publish(ctx, a); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("publish assessment failed", "error", err, "status", a.Status.String())
	}
	return nil
}
