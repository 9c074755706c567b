// Package domain contains the core business entities, ports and the TDEE
// estimation rule.
package domain

import (
	"context"
	"time"
)

// MaxWeight bounds a stored weight in pounds.
const MaxWeight = 2000.0

// WeightEntry is a single body-weight observation in pounds. There is at most
// one entry per local calendar day.
type WeightEntry struct {
	Day       string    `json:"day"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeightRepository is the port for the weight log.
type WeightRepository interface {
	// UpsertWeight stores amount for day, replacing any existing entry.
	UpsertWeight(ctx context.Context, day string, amount float64, createdAt time.Time) (*WeightEntry, error)
	DeleteWeight(ctx context.Context, day string) (bool, error)
	// WeightsInRange returns entries with from <= day <= to, newest first.
	WeightsInRange(ctx context.Context, from, to string) ([]WeightEntry, error)
	RecentWeights(ctx context.Context, limit int) ([]WeightEntry, error)
}

// MeanWeight returns the average amount of entries. ok is false when entries
// is empty.
func MeanWeight(entries []WeightEntry) (mean float64, ok bool) {
	if len(entries) == 0 {
		return 0, false
	}
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}
	return sum / float64(len(entries)), true
}
