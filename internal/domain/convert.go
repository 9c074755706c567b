package domain

import "fmt"

const kgToLb = 2.2046226218

// Weight units accepted on input.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return v * kgToLb
	}
	if from == UnitLb && to == UnitKg {
		return v / kgToLb
	}
	return v
}

// ToPounds normalises v in unit to pounds, the unit the weight log stores.
// An empty unit means pounds.
func ToPounds(v float64, unit string) (float64, error) {
	switch unit {
	case "", UnitLb:
		return v, nil
	case UnitKg:
		return ConvertWeight(v, UnitKg, UnitLb), nil
	default:
		return 0, fmt.Errorf("%w: unit must be %q or %q", ErrInvalidInput, UnitKg, UnitLb)
	}
}
