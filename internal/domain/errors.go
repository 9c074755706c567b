package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData indicates a required weight window has no observations.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrNoCalorieData indicates the calorie window is empty. It is never fatal.
	ErrNoCalorieData = errors.New("no calorie data")
	// ErrStoreUnavailable indicates the underlying store could not be read or written.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidInput indicates a request value failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// Observation windows used by the TDEE estimator.
const (
	WindowCalories     = "calories"
	WindowPriorWeight  = "prior weight"
	WindowRecentWeight = "recent weight"
)

// MissingDataError reports an observation window with no entries.
type MissingDataError struct {
	Window string
	Range  DateRange
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no %s observations between %s and %s", e.Window, e.Range.From, e.Range.To)
}

// Unwrap maps the calorie window to ErrNoCalorieData and weight windows to
// ErrInsufficientData.
func (e *MissingDataError) Unwrap() error {
	if e.Window == WindowCalories {
		return ErrNoCalorieData
	}
	return ErrInsufficientData
}

// Fatal reports whether the missing window prevents an estimate.
func (e *MissingDataError) Fatal() bool {
	return e.Window != WindowCalories
}
