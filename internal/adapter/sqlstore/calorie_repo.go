package sqlstore

import (
	"context"
	"time"

	"fitness/internal/domain"
)

type calorieRow struct {
	ID        int64  `db:"id"`
	Amount    int    `db:"amount"`
	Day       string `db:"day"`
	CreatedAt dbTime `db:"created_at"`
}

// AddCalories inserts a calorie entry stamped with the local day of createdAt.
func (s *Store) AddCalories(ctx context.Context, amount int, createdAt time.Time) (*domain.CalorieEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.CalorieEntry{
		Day:       domain.LocalDay(createdAt),
		Amount:    amount,
		CreatedAt: createdAt.UTC(),
	}
	start := time.Now()
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(
		"INSERT INTO calories(amount, day, created_at) VALUES(?, ?, ?) RETURNING id;"),
		e.Amount, e.Day, e.CreatedAt,
	).Scan(&e.ID)
	if err := s.observe("add_calories", start, err); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteCalories removes a calorie entry by ID.
func (s *Store) DeleteCalories(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM calories WHERE id = ?;"), id)
	var n int64
	if err == nil {
		n, err = res.RowsAffected()
	}
	if err := s.observe("delete_calories", start, err); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CaloriesInRange returns entries whose local day falls between from and to
// inclusive, newest first.
func (s *Store) CaloriesInRange(ctx context.Context, from, to string) ([]domain.CalorieEntry, error) {
	if (domain.DateRange{From: from, To: to}).Empty() {
		return []domain.CalorieEntry{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	var rows []calorieRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(
		"SELECT id, amount, day, created_at FROM calories WHERE day >= ? AND day <= ? ORDER BY created_at DESC, id DESC;"),
		from, to,
	)
	if err := s.observe("calories_in_range", start, err); err != nil {
		return nil, err
	}

	out := make([]domain.CalorieEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CalorieEntry{ID: r.ID, Day: r.Day, Amount: r.Amount, CreatedAt: r.CreatedAt.Time})
	}
	return out, nil
}
