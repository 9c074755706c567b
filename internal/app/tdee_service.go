package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"fitness/internal/domain"
	"fitness/internal/metrics"
)

// TdeeService evaluates the TDEE estimate against the current store contents.
// It holds no state between calls.
type TdeeService struct {
	weights  domain.WeightRepository
	calories domain.CalorieRepository
	log      logrus.FieldLogger
	metrics  *metrics.Collector
	now      Clock
}

// NewTdeeService creates a TdeeService reading from the given repositories.
func NewTdeeService(weights domain.WeightRepository, calories domain.CalorieRepository, log logrus.FieldLogger) *TdeeService {
	return &TdeeService{weights: weights, calories: calories, log: log, now: time.Now}
}

// WithClock replaces the clock used to capture the evaluation instant.
func (s *TdeeService) WithClock(c Clock) *TdeeService {
	s.now = c
	return s
}

// WithMetrics records evaluation outcomes on c.
func (s *TdeeService) WithMetrics(c *metrics.Collector) *TdeeService {
	s.metrics = c
	return s
}

// Estimate evaluates the estimate as of now.
func (s *TdeeService) Estimate(ctx context.Context) (domain.TdeeBreakdown, error) {
	return s.EstimateAt(ctx, s.now())
}

// EstimateAt evaluates the estimate with every window derived from now. The
// three reads are not isolated from concurrent writers.
func (s *TdeeService) EstimateAt(ctx context.Context, now time.Time) (domain.TdeeBreakdown, error) {
	w := domain.WindowsFor(now)
	log := s.log.WithField("today", w.Today)

	b, err := s.evaluate(ctx, w)
	if err != nil {
		var missing *domain.MissingDataError
		if errors.As(err, &missing) && missing.Fatal() {
			s.metrics.RecordTdee(metrics.OutcomeInsufficientData, 0)
			log.WithError(err).Info("tdee estimate unavailable")
		} else {
			s.metrics.RecordTdee(metrics.OutcomeError, 0)
			log.WithError(err).Error("tdee estimate failed")
		}
		return domain.TdeeBreakdown{}, err
	}

	for _, warning := range b.Warnings() {
		log.WithError(warning).Warn("tdee estimate assumes zero intake")
	}
	s.metrics.RecordTdee(metrics.OutcomeOK, b.Amount)
	log.WithField("amount", b.Amount).Debug("tdee estimated")
	return b, nil
}

func (s *TdeeService) evaluate(ctx context.Context, w domain.TdeeWindows) (domain.TdeeBreakdown, error) {
	recent, err := s.weights.WeightsInRange(ctx, w.RecentWeight.From, w.RecentWeight.To)
	if err != nil {
		return domain.TdeeBreakdown{}, err
	}
	prior, err := s.weights.WeightsInRange(ctx, w.PriorWeight.From, w.PriorWeight.To)
	if err != nil {
		return domain.TdeeBreakdown{}, err
	}
	intake, err := s.calories.CaloriesInRange(ctx, w.Calories.From, w.Calories.To)
	if err != nil {
		return domain.TdeeBreakdown{}, err
	}
	return domain.ComputeTdee(w, intake, append(recent, prior...))
}
