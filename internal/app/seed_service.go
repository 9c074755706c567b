package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"fitness/internal/domain"
)

// Development seed values: a steady weight over the four weeks ending today
// and a fixed daily intake over the four weeks before today.
const (
	SeedWeight   = 202.9
	SeedCalories = 2500
	seedDays     = 28
)

// SeedResult reports how many entries Seed wrote.
type SeedResult struct {
	Weights  int `json:"weights"`
	Calories int `json:"calories"`
}

// SeedService fills an empty store with enough history to produce an estimate.
type SeedService struct {
	store domain.Store
	log   logrus.FieldLogger
}

// NewSeedService creates a SeedService writing to store.
func NewSeedService(store domain.Store, log logrus.FieldLogger) *SeedService {
	return &SeedService{store: store, log: log}
}

// Seed writes SeedWeight for each of the 28 days ending on now's date and one
// SeedCalories entry for each of the 28 days before it. Weights replace any
// existing value; calorie days that already have entries are left alone, so
// seeding twice does not double the intake.
func (s *SeedService) Seed(ctx context.Context, now time.Time) (SeedResult, error) {
	var res SeedResult

	for i := 0; i < seedDays; i++ {
		day := domain.DayRange(now, i, i).From
		if _, err := s.store.UpsertWeight(ctx, day, SeedWeight, now); err != nil {
			return res, err
		}
		res.Weights++
	}

	for i := 1; i <= seedDays; i++ {
		day := domain.DayRange(now, i, i).From
		existing, err := s.store.CaloriesInRange(ctx, day, day)
		if err != nil {
			return res, err
		}
		if len(existing) > 0 {
			continue
		}
		midnight, err := domain.ParseDay(day)
		if err != nil {
			return res, err
		}
		if _, err := s.store.AddCalories(ctx, SeedCalories, midnight.Add(12*time.Hour)); err != nil {
			return res, err
		}
		res.Calories++
	}

	s.log.WithFields(logrus.Fields{
		"weights":  res.Weights,
		"calories": res.Calories,
	}).Info("store seeded")
	return res, nil
}
