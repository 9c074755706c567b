package app

import (
	"context"
	"fmt"
	"time"

	"fitness/internal/domain"
)

// MaxChartDays caps the span GetDaily returns.
const MaxChartDays = 366

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	weightRepo  domain.WeightRepository
	calorieRepo domain.CalorieRepository
	now         Clock
}

// NewChartsService creates a ChartsService backed by the given repositories.
func NewChartsService(wr domain.WeightRepository, cr domain.CalorieRepository) *ChartsService {
	return &ChartsService{weightRepo: wr, calorieRepo: cr, now: time.Now}
}

// WithClock replaces the clock used to resolve "today".
func (s *ChartsService) WithClock(c Clock) *ChartsService {
	s.now = c
	return s
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day      string       `json:"day"`
	Calories int          `json:"calories"`
	Weight   *WeightPoint `json:"weight"`
}

// WeightPoint is the optional weight value within a DayPoint.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns per-day chart data for the last days days, oldest first,
// with weights converted to the requested unit.
func (s *ChartsService) GetDaily(ctx context.Context, days int, unit string) ([]DayPoint, error) {
	if unit != domain.UnitKg && unit != domain.UnitLb {
		return nil, fmt.Errorf("%w: unit must be %q or %q", domain.ErrInvalidInput, domain.UnitKg, domain.UnitLb)
	}
	if days < 1 {
		days = 1
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	now := s.now()
	span := domain.DayRange(now, days-1, 0)

	weights, err := s.weightRepo.WeightsInRange(ctx, span.From, span.To)
	if err != nil {
		return nil, err
	}
	calories, err := s.calorieRepo.CaloriesInRange(ctx, span.From, span.To)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]float64, len(weights))
	for _, w := range weights {
		byDay[w.Day] = w.Amount
	}
	totals := domain.CaloriesByDay(calories)

	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := domain.DayRange(now, i, i).From

		var wp *WeightPoint
		if lb, ok := byDay[day]; ok {
			wp = &WeightPoint{Value: domain.ConvertWeight(lb, domain.UnitLb, unit), Unit: unit}
		}
		points = append(points, DayPoint{Day: day, Calories: totals[day], Weight: wp})
	}
	return points, nil
}
