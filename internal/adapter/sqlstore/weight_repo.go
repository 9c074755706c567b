package sqlstore

import (
	"context"
	"time"

	"fitness/internal/domain"
)

type weightRow struct {
	Day       string  `db:"day"`
	Amount    float64 `db:"amount"`
	CreatedAt dbTime  `db:"created_at"`
}

func (r weightRow) entry() domain.WeightEntry {
	return domain.WeightEntry{Day: r.Day, Amount: r.Amount, CreatedAt: r.CreatedAt.Time}
}

func weightEntries(rows []weightRow) []domain.WeightEntry {
	out := make([]domain.WeightEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out
}

// UpsertWeight stores the weight for day, replacing any existing entry.
func (s *Store) UpsertWeight(ctx context.Context, day string, amount float64, createdAt time.Time) (*domain.WeightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	_, err := s.db.ExecContext(ctx, s.db.Rebind(
		"INSERT INTO weights(day, amount, created_at) VALUES(?, ?, ?) "+
			"ON CONFLICT (day) DO UPDATE SET amount = excluded.amount, created_at = excluded.created_at;"),
		day, amount, createdAt.UTC(),
	)
	if err := s.observe("upsert_weight", start, err); err != nil {
		return nil, err
	}
	return &domain.WeightEntry{Day: day, Amount: amount, CreatedAt: createdAt.UTC()}, nil
}

// DeleteWeight removes the entry for day.
func (s *Store) DeleteWeight(ctx context.Context, day string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM weights WHERE day = ?;"), day)
	var n int64
	if err == nil {
		n, err = res.RowsAffected()
	}
	if err := s.observe("delete_weight", start, err); err != nil {
		return false, err
	}
	return n > 0, nil
}

// WeightsInRange returns entries between from and to inclusive, newest first.
func (s *Store) WeightsInRange(ctx context.Context, from, to string) ([]domain.WeightEntry, error) {
	if (domain.DateRange{From: from, To: to}).Empty() {
		return []domain.WeightEntry{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	var rows []weightRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(
		"SELECT day, amount, created_at FROM weights WHERE day >= ? AND day <= ? ORDER BY day DESC;"),
		from, to,
	)
	if err := s.observe("weights_in_range", start, err); err != nil {
		return nil, err
	}
	return weightEntries(rows), nil
}

// RecentWeights returns up to limit entries, newest first.
func (s *Store) RecentWeights(ctx context.Context, limit int) ([]domain.WeightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	var rows []weightRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(
		"SELECT day, amount, created_at FROM weights ORDER BY day DESC LIMIT ?;"), limit)
	if err := s.observe("recent_weights", start, err); err != nil {
		return nil, err
	}
	return weightEntries(rows), nil
}
