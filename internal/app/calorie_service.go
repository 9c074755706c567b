package app

import (
	"context"
	"fmt"
	"time"

	"fitness/internal/domain"
)

// CalorieService encapsulates calorie-logging use cases.
type CalorieService struct {
	repo domain.CalorieRepository
	now  Clock
}

// NewCalorieService creates a CalorieService backed by the given repository.
func NewCalorieService(repo domain.CalorieRepository) *CalorieService {
	return &CalorieService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used to stamp entries and resolve "today".
func (s *CalorieService) WithClock(c Clock) *CalorieService {
	s.now = c
	return s
}

// Record validates and appends a calorie entry stamped now.
func (s *CalorieService) Record(ctx context.Context, amount int) (*domain.CalorieEntry, error) {
	if amount < 0 || amount > domain.MaxCalorieAmount {
		return nil, fmt.Errorf("%w: amount must be between 0 and %d", domain.ErrInvalidInput, domain.MaxCalorieAmount)
	}
	return s.repo.AddCalories(ctx, amount, s.now())
}

// Delete removes the entry with id.
func (s *CalorieService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteCalories(ctx, id)
}

// ListRange returns entries between from and to inclusive, newest first.
func (s *CalorieService) ListRange(ctx context.Context, from, to string) ([]domain.CalorieEntry, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.CaloriesInRange(ctx, from, to)
}

// ListToday returns today's entries, newest first.
func (s *CalorieService) ListToday(ctx context.Context) ([]domain.CalorieEntry, string, error) {
	today := domain.LocalDay(s.now())
	items, err := s.repo.CaloriesInRange(ctx, today, today)
	return items, today, err
}
