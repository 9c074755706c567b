package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness/internal/domain"
)

var evalNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func daysAgo(n int) string {
	return evalNow.AddDate(0, 0, -n).Format(domain.DayLayout)
}

// weights returns one entry per day for offsets from..to (inclusive, from >= to).
func weights(from, to int, amount float64) []domain.WeightEntry {
	var out []domain.WeightEntry
	for i := to; i <= from; i++ {
		out = append(out, domain.WeightEntry{Day: daysAgo(i), Amount: amount})
	}
	return out
}

func calories(from, to int, amount int) []domain.CalorieEntry {
	var out []domain.CalorieEntry
	for i := to; i <= from; i++ {
		out = append(out, domain.CalorieEntry{ID: int64(i), Day: daysAgo(i), Amount: amount})
	}
	return out
}

func concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestWindowsFor(t *testing.T) {
	w := domain.WindowsFor(evalNow)

	assert.Equal(t, "2026-03-10", w.Today)
	assert.Equal(t, domain.DateRange{From: daysAgo(28), To: daysAgo(1)}, w.Calories)
	assert.Equal(t, domain.DateRange{From: daysAgo(27), To: daysAgo(14)}, w.PriorWeight)
	assert.Equal(t, domain.DateRange{From: daysAgo(13), To: daysAgo(0)}, w.RecentWeight)
}

func TestWindowsFor_SameInstantAnyZone(t *testing.T) {
	want := domain.WindowsFor(evalNow)
	for _, loc := range []*time.Location{time.UTC, time.FixedZone("UTC+14", 14*3600)} {
		assert.Equal(t, want, domain.WindowsFor(evalNow.In(loc)), loc.String())
	}
}

func TestComputeTdee_ScenarioA(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	// 28 days of 1250 kcal = 35000.
	b, err := domain.ComputeTdee(w,
		calories(28, 1, 1250),
		concat(weights(27, 14, 200.0), weights(13, 0, 198.0)),
	)
	require.NoError(t, err)

	assert.Equal(t, 35000, b.CalorieSum)
	assert.Equal(t, 17500, b.FoodCalsBurned)
	assert.InDelta(t, 200.0, b.PriorAverage, 1e-9)
	assert.InDelta(t, 198.0, b.RecentAverage, 1e-9)
	assert.InDelta(t, 2.0, b.WeightLoss, 1e-9)
	assert.InDelta(t, 7000.0, b.FatCalsBurned, 1e-6)
	assert.Equal(t, 24500, b.TotalCalsBurned)
	assert.Equal(t, 1750, b.Amount)
	assert.Equal(t, domain.TdeeEstimate{Amount: 1750}, b.Estimate())
	assert.Empty(t, b.Warnings())
}

func TestComputeTdee_ScenarioB(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	b, err := domain.ComputeTdee(w, nil, weights(27, 0, 180.0))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Amount)
}

func TestComputeTdee_ZeroCalorieDefault(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	b, err := domain.ComputeTdee(w, nil, concat(weights(27, 14, 201.0), weights(13, 0, 199.0)))
	require.NoError(t, err)

	assert.Equal(t, 0, b.FoodCalsBurned)
	// 2 lb * 3500 / 14
	assert.Equal(t, 500, b.Amount)

	warnings := b.Warnings()
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], domain.ErrNoCalorieData)
	assert.NotErrorIs(t, warnings[0], domain.ErrInsufficientData)

	var mde *domain.MissingDataError
	require.ErrorAs(t, warnings[0], &mde)
	assert.False(t, mde.Fatal())
	assert.Equal(t, w.Calories, mde.Range)
}

func TestComputeTdee_MissingWeightWindow(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	tests := []struct {
		name    string
		weights []domain.WeightEntry
		window  string
	}{
		{"no weights at all", nil, domain.WindowPriorWeight},
		{"recent window empty", weights(27, 14, 200.0), domain.WindowRecentWeight},
		{"prior window empty", weights(13, 0, 200.0), domain.WindowPriorWeight},
		{"only outside windows", weights(40, 28, 200.0), domain.WindowPriorWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := domain.ComputeTdee(w, calories(28, 1, 2500), tc.weights)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInsufficientData))
			assert.Equal(t, domain.TdeeBreakdown{}, b)

			var mde *domain.MissingDataError
			require.ErrorAs(t, err, &mde)
			assert.Equal(t, tc.window, mde.Window)
			assert.True(t, mde.Fatal())
		})
	}
}

func TestComputeTdee_WindowBoundaries(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	base := concat(weights(27, 14, 200.0), weights(13, 0, 198.0))
	want, err := domain.ComputeTdee(w, calories(28, 1, 1250), base)
	require.NoError(t, err)

	tests := []struct {
		name     string
		calories []domain.CalorieEntry
		weights  []domain.WeightEntry
	}{
		{"calorie entry today", calories(0, 0, 9000), nil},
		{"calorie entry before window", calories(29, 29, 9000), nil},
		{"weight entry before prior window", nil, weights(28, 28, 500.0)},
		{"weight entry after recent window", []domain.CalorieEntry{}, []domain.WeightEntry{
			{Day: evalNow.AddDate(0, 0, 1).Format(domain.DayLayout), Amount: 500.0},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ComputeTdee(w,
				concat(calories(28, 1, 1250), tc.calories),
				concat(base, tc.weights),
			)
			require.NoError(t, err)
			assert.Equal(t, want.Amount, got.Amount)
		})
	}
}

func TestComputeTdee_BoundaryInclusivity(t *testing.T) {
	w := domain.WindowsFor(evalNow)

	// Only two weights: one 14 days ago and one 13 days ago.
	b, err := domain.ComputeTdee(w, nil, []domain.WeightEntry{
		{Day: daysAgo(14), Amount: 210.0},
		{Day: daysAgo(13), Amount: 200.0},
	})
	require.NoError(t, err)
	assert.InDelta(t, 210.0, b.PriorAverage, 1e-9)
	assert.InDelta(t, 200.0, b.RecentAverage, 1e-9)

	// Edges of every window are inclusive.
	b, err = domain.ComputeTdee(w,
		[]domain.CalorieEntry{{Day: daysAgo(28), Amount: 1000}, {Day: daysAgo(1), Amount: 1000}},
		[]domain.WeightEntry{{Day: daysAgo(27), Amount: 200.0}, {Day: daysAgo(0), Amount: 200.0}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2000, b.CalorieSum)
	assert.Equal(t, 2, b.CalorieEntries)
}

func TestComputeTdee_TruncatesFinalDivision(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	// 35006 / 2 = 17503; 17503 + 7000 = 24503; 24503 / 14 = 1750.21.
	b, err := domain.ComputeTdee(w,
		[]domain.CalorieEntry{{Day: daysAgo(1), Amount: 35006}},
		concat(weights(27, 14, 200.0), weights(13, 0, 198.0)),
	)
	require.NoError(t, err)
	assert.Equal(t, 24503, b.TotalCalsBurned)
	assert.Equal(t, 1750, b.Amount)
}

func TestComputeTdee_TruncatesFoodHalf(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	b, err := domain.ComputeTdee(w,
		[]domain.CalorieEntry{{Day: daysAgo(1), Amount: 2801}},
		weights(27, 0, 180.0),
	)
	require.NoError(t, err)
	assert.Equal(t, 1400, b.FoodCalsBurned)
	assert.Equal(t, 100, b.Amount)
}

func TestComputeTdee_RoundsFatCalories(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	// loss of 0.0003 lb = 1.05 kcal, rounds to 1.
	b, err := domain.ComputeTdee(w, nil, concat(weights(27, 14, 200.0003), weights(13, 0, 200.0)))
	require.NoError(t, err)
	assert.Equal(t, 1, b.TotalCalsBurned)
	assert.Equal(t, 0, b.Amount)
}

func TestComputeTdee_WeightGainTruncatesTowardZero(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	// gain of 0.1 lb = -350 kcal; -350 / 14 = -25.
	b, err := domain.ComputeTdee(w, nil, concat(weights(27, 14, 200.0), weights(13, 0, 200.1)))
	require.NoError(t, err)
	assert.Equal(t, -350, b.TotalCalsBurned)
	assert.Equal(t, -25, b.Amount)
}

func TestComputeTdee_MonotonicInWeightLoss(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	intake := calories(28, 1, 2200)

	prev := 0
	for i, loss := range []float64{-1, 0, 0.5, 1, 2, 4} {
		b, err := domain.ComputeTdee(w, intake, concat(weights(27, 14, 200.0), weights(13, 0, 200.0-loss)))
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, b.Amount, prev, "loss %v", loss)
		}
		prev = b.Amount
	}
}

func TestComputeTdee_AveragesUnevenWindows(t *testing.T) {
	w := domain.WindowsFor(evalNow)
	b, err := domain.ComputeTdee(w, nil, []domain.WeightEntry{
		{Day: daysAgo(20), Amount: 201.0},
		{Day: daysAgo(15), Amount: 203.0},
		{Day: daysAgo(2), Amount: 200.0},
	})
	require.NoError(t, err)
	assert.InDelta(t, 202.0, b.PriorAverage, 1e-9)
	assert.InDelta(t, 200.0, b.RecentAverage, 1e-9)
	assert.Equal(t, 500, b.Amount)
}
