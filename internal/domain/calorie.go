package domain

import (
	"context"
	"math"
	"time"
)

// MaxCalorieAmount is the largest intake a single entry may record; the
// calories.amount column is a 32-bit integer.
const MaxCalorieAmount = math.MaxInt32

// CalorieEntry is a single logged intake. Any number of entries may exist per
// day; Day is the local calendar day of CreatedAt.
type CalorieEntry struct {
	ID        int64     `json:"id"`
	Day       string    `json:"day"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// CalorieRepository is the port for the calorie log.
type CalorieRepository interface {
	AddCalories(ctx context.Context, amount int, createdAt time.Time) (*CalorieEntry, error)
	DeleteCalories(ctx context.Context, id int64) (bool, error)
	// CaloriesInRange returns entries with from <= day <= to, newest first.
	CaloriesInRange(ctx context.Context, from, to string) ([]CalorieEntry, error)
}

// SumCalories returns the total amount of entries.
func SumCalories(entries []CalorieEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

// CaloriesByDay totals entries per local day.
func CaloriesByDay(entries []CalorieEntry) map[string]int {
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.Day] += e.Amount
	}
	return out
}

// Store is a time-series store holding both logs.
type Store interface {
	WeightRepository
	CalorieRepository
}
