package domain

import (
	"math"
	"time"
)

const (
	// CaloriesPerPound is the approximate energy content of one pound of body fat.
	CaloriesPerPound = 3500.0
	// TrendDays is the gap between the centres of the two weight windows, and
	// the number of days the total burn is amortised over.
	TrendDays = 14
)

// TdeeEstimate is the estimated daily maintenance calories.
type TdeeEstimate struct {
	Amount int `json:"amount"`
}

// TdeeWindows are the observation spans for one evaluation.
type TdeeWindows struct {
	Today        string    `json:"today"`
	Calories     DateRange `json:"calories"`
	PriorWeight  DateRange `json:"priorWeight"`
	RecentWeight DateRange `json:"recentWeight"`
}

// WindowsFor derives all three windows from a single instant. Calories cover
// the 28 days before today, the recent weight window the 14 days ending today
// and the prior weight window the 14 days before that.
func WindowsFor(now time.Time) TdeeWindows {
	return TdeeWindows{
		Today:        LocalDay(now),
		Calories:     DayRange(now, 28, 1),
		PriorWeight:  DayRange(now, 27, 14),
		RecentWeight: DayRange(now, 13, 0),
	}
}

// TdeeBreakdown holds every intermediate term of an estimate.
type TdeeBreakdown struct {
	Windows         TdeeWindows `json:"windows"`
	CalorieEntries  int         `json:"calorieEntries"`
	CalorieSum      int         `json:"calorieSum"`
	FoodCalsBurned  int         `json:"foodCalsBurned"`
	PriorAverage    float64     `json:"priorAverage"`
	RecentAverage   float64     `json:"recentAverage"`
	WeightLoss      float64     `json:"weightLoss"`
	FatCalsBurned   float64     `json:"fatCalsBurned"`
	TotalCalsBurned int         `json:"totalCalsBurned"`
	Amount          int         `json:"amount"`
}

// Estimate returns the public view of b.
func (b TdeeBreakdown) Estimate() TdeeEstimate {
	return TdeeEstimate{Amount: b.Amount}
}

// Warnings returns the non-fatal missing-data conditions of b.
func (b TdeeBreakdown) Warnings() []error {
	if b.CalorieEntries > 0 {
		return nil
	}
	return []error{&MissingDataError{Window: WindowCalories, Range: b.Windows.Calories}}
}

// ComputeTdee estimates daily energy expenditure from the calorie and weight
// logs. Entries outside their window are ignored. An empty calorie window
// counts as zero intake; an empty weight window is a *MissingDataError
// wrapping ErrInsufficientData.
//
// Half of the logged intake is taken as food-linked burn. This is a crude
// approximation, not an established formula.
func ComputeTdee(w TdeeWindows, calories []CalorieEntry, weights []WeightEntry) (TdeeBreakdown, error) {
	b := TdeeBreakdown{Windows: w}

	var intake []CalorieEntry
	for _, c := range calories {
		if w.Calories.Contains(c.Day) {
			intake = append(intake, c)
		}
	}
	var prior, recent []WeightEntry
	for _, e := range weights {
		switch {
		case w.RecentWeight.Contains(e.Day):
			recent = append(recent, e)
		case w.PriorWeight.Contains(e.Day):
			prior = append(prior, e)
		}
	}

	priorAvg, ok := MeanWeight(prior)
	if !ok {
		return TdeeBreakdown{}, &MissingDataError{Window: WindowPriorWeight, Range: w.PriorWeight}
	}
	recentAvg, ok := MeanWeight(recent)
	if !ok {
		return TdeeBreakdown{}, &MissingDataError{Window: WindowRecentWeight, Range: w.RecentWeight}
	}

	b.CalorieEntries = len(intake)
	b.CalorieSum = SumCalories(intake)
	b.FoodCalsBurned = b.CalorieSum / 2
	b.PriorAverage = priorAvg
	b.RecentAverage = recentAvg
	b.WeightLoss = priorAvg - recentAvg
	b.FatCalsBurned = b.WeightLoss * CaloriesPerPound
	b.TotalCalsBurned = b.FoodCalsBurned + int(math.Round(b.FatCalsBurned))
	b.Amount = b.TotalCalsBurned / TrendDays
	return b, nil
}
