// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"time"

	"fitness/internal/domain"
)

// DefaultRecentWeights is how many entries ListRecent returns when no limit is given.
const DefaultRecentWeights = 90

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
	now  Clock
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used to stamp entries and resolve "today".
func (s *WeightService) WithClock(c Clock) *WeightService {
	s.now = c
	return s
}

// Today returns today's weight entry, or nil if none has been logged.
func (s *WeightService) Today(ctx context.Context) (*domain.WeightEntry, string, error) {
	today := domain.LocalDay(s.now())
	items, err := s.repo.WeightsInRange(ctx, today, today)
	if err != nil || len(items) == 0 {
		return nil, today, err
	}
	return &items[0], today, nil
}

// Record validates and stores a weight for day, replacing any existing entry
// for that day. An empty day means today; an empty unit means pounds.
func (s *WeightService) Record(ctx context.Context, amount float64, unit, day string) (*domain.WeightEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be > 0", domain.ErrInvalidInput)
	}
	lb, err := domain.ToPounds(amount, unit)
	if err != nil {
		return nil, err
	}
	if lb >= domain.MaxWeight {
		return nil, fmt.Errorf("%w: amount must be below %v lb", domain.ErrInvalidInput, domain.MaxWeight)
	}
	now := s.now()
	if day == "" {
		day = domain.LocalDay(now)
	} else if _, err := domain.ParseDay(day); err != nil {
		return nil, err
	}
	return s.repo.UpsertWeight(ctx, day, lb, now)
}

// Delete removes the entry for day.
func (s *WeightService) Delete(ctx context.Context, day string) (bool, error) {
	if _, err := domain.ParseDay(day); err != nil {
		return false, err
	}
	return s.repo.DeleteWeight(ctx, day)
}

// ListRange returns entries between from and to inclusive, newest first.
func (s *WeightService) ListRange(ctx context.Context, from, to string) ([]domain.WeightEntry, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.WeightsInRange(ctx, from, to)
}

// ListRecent returns the most recent weight entries up to limit.
func (s *WeightService) ListRecent(ctx context.Context, limit int) ([]domain.WeightEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentWeights
	}
	return s.repo.RecentWeights(ctx, limit)
}

func validateRange(from, to string) error {
	if _, err := domain.ParseDay(from); err != nil {
		return err
	}
	_, err := domain.ParseDay(to)
	return err
}
