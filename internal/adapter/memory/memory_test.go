package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"fitness/internal/domain"
)

func TestWeightRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	day := domain.LocalDay(now)

	entry, err := db.UpsertWeight(ctx, day, 200.5, now)
	if err != nil {
		t.Fatalf("UpsertWeight: %v", err)
	}
	if entry.Day != day || entry.Amount != 200.5 {
		t.Errorf("unexpected entry %+v", entry)
	}

	// Same day replaces.
	if _, err := db.UpsertWeight(ctx, day, 199.0, now.Add(time.Minute)); err != nil {
		t.Fatalf("UpsertWeight: %v", err)
	}
	events, err := db.RecentWeights(ctx, 10)
	if err != nil {
		t.Fatalf("RecentWeights: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(events))
	}
	if events[0].Amount != 199.0 {
		t.Errorf("expected 199.0, got %f", events[0].Amount)
	}

	ok, err := db.DeleteWeight(ctx, day)
	if err != nil {
		t.Fatalf("DeleteWeight: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
	ok, _ = db.DeleteWeight(ctx, day)
	if ok {
		t.Error("expected false for missing day")
	}

	events, _ = db.RecentWeights(ctx, 10)
	if len(events) != 0 {
		t.Error("expected 0 entries")
	}
}

func TestWeightsInRange(t *testing.T) {
	db := New()
	ctx := context.Background()

	for _, d := range []string{"2026-01-01", "2026-01-05", "2026-01-03", "2026-01-10"} {
		_, _ = db.UpsertWeight(ctx, d, 180, time.Now())
	}

	got, err := db.WeightsInRange(ctx, "2026-01-03", "2026-01-05")
	if err != nil {
		t.Fatalf("WeightsInRange: %v", err)
	}
	if len(got) != 2 || got[0].Day != "2026-01-05" || got[1].Day != "2026-01-03" {
		t.Errorf("unexpected range result %+v", got)
	}

	inverted, err := db.WeightsInRange(ctx, "2026-01-10", "2026-01-01")
	if err != nil {
		t.Fatalf("inverted range should not error: %v", err)
	}
	if len(inverted) != 0 {
		t.Errorf("expected empty result, got %d", len(inverted))
	}

	recent, _ := db.RecentWeights(ctx, 2)
	if len(recent) != 2 || recent[0].Day != "2026-01-10" {
		t.Errorf("unexpected recent result %+v", recent)
	}
}

func TestCalorieRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	first, err := db.AddCalories(ctx, 500, now)
	if err != nil {
		t.Fatalf("AddCalories: %v", err)
	}
	second, _ := db.AddCalories(ctx, 700, now.Add(time.Minute))
	if first.ID == second.ID {
		t.Error("expected distinct IDs")
	}

	day := domain.LocalDay(now)
	events, err := db.CaloriesInRange(ctx, day, day)
	if err != nil {
		t.Fatalf("CaloriesInRange: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(events))
	}
	if events[0].ID != second.ID {
		t.Error("expected newest entry first")
	}
	if domain.SumCalories(events) != 1200 {
		t.Errorf("expected 1200, got %d", domain.SumCalories(events))
	}

	ok, err := db.DeleteCalories(ctx, first.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteCalories: %v %v", ok, err)
	}
	ok, _ = db.DeleteCalories(ctx, first.ID)
	if ok {
		t.Error("expected false for missing id")
	}

	events, _ = db.CaloriesInRange(ctx, day, day)
	if len(events) != 1 {
		t.Errorf("expected 1 entry, got %d", len(events))
	}

	events, _ = db.CaloriesInRange(ctx, day, "2000-01-01")
	if len(events) != 0 {
		t.Error("expected inverted range to be empty")
	}
}

func TestConcurrentWrites(t *testing.T) {
	db := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = db.AddCalories(ctx, 10, time.Now())
		}()
	}
	wg.Wait()

	day := domain.LocalDay(time.Now())
	events, _ := db.CaloriesInRange(ctx, domain.LocalDay(time.Now().AddDate(0, 0, -1)), day)
	if len(events) != 50 {
		t.Errorf("expected 50 entries, got %d", len(events))
	}
}
