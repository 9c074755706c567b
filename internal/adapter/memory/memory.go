// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitness/internal/domain"
)

// DB implements an in-memory database storage. A single mutex serialises
// every read and write.
type DB struct {
	mu       sync.Mutex
	weights  map[string]domain.WeightEntry
	calories []domain.CalorieEntry

	calorieIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		weights: make(map[string]domain.WeightEntry),
	}
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*DB)(nil)
var _ domain.CalorieRepository = (*DB)(nil)
var _ domain.Store = (*DB)(nil)

// --- WeightRepository ---

// UpsertWeight stores the weight for day, replacing any existing entry.
func (db *DB) UpsertWeight(ctx context.Context, day string, amount float64, createdAt time.Time) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	entry := domain.WeightEntry{
		Day:       day,
		Amount:    amount,
		CreatedAt: createdAt.UTC(),
	}
	db.weights[day] = entry
	return &entry, nil
}

// DeleteWeight removes the entry for day.
func (db *DB) DeleteWeight(ctx context.Context, day string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.weights[day]; !ok {
		return false, nil
	}
	delete(db.weights, day)
	return true, nil
}

// WeightsInRange returns entries between from and to inclusive, newest first.
func (db *DB) WeightsInRange(ctx context.Context, from, to string) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	r := domain.DateRange{From: from, To: to}
	result := make([]domain.WeightEntry, 0)
	if r.Empty() {
		return result, nil
	}
	for day, w := range db.weights {
		if r.Contains(day) {
			result = append(result, w)
		}
	}
	sortWeightsDesc(result)
	return result, nil
}

// RecentWeights returns up to limit entries, newest first.
func (db *DB) RecentWeights(ctx context.Context, limit int) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, 0, len(db.weights))
	for _, w := range db.weights {
		result = append(result, w)
	}
	sortWeightsDesc(result)

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func sortWeightsDesc(ws []domain.WeightEntry) {
	sort.Slice(ws, func(i, j int) bool {
		return ws[i].Day > ws[j].Day
	})
}

// --- CalorieRepository ---

// AddCalories appends a calorie entry.
func (db *DB) AddCalories(ctx context.Context, amount int, createdAt time.Time) (*domain.CalorieEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.calorieIDCounter++
	entry := domain.CalorieEntry{
		ID:        db.calorieIDCounter,
		Day:       domain.LocalDay(createdAt),
		Amount:    amount,
		CreatedAt: createdAt.UTC(),
	}
	db.calories = append(db.calories, entry)
	return &entry, nil
}

// DeleteCalories deletes a calorie entry by ID.
func (db *DB) DeleteCalories(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, c := range db.calories {
		if c.ID == id {
			db.calories = append(db.calories[:i], db.calories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// CaloriesInRange returns entries whose day falls between from and to
// inclusive, newest first.
func (db *DB) CaloriesInRange(ctx context.Context, from, to string) ([]domain.CalorieEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	r := domain.DateRange{From: from, To: to}
	result := make([]domain.CalorieEntry, 0)
	if r.Empty() {
		return result, nil
	}
	for _, c := range db.calories {
		if r.Contains(c.Day) {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
