package engine

import (
	"fmt"
	"math"
	"strings"
)

// ConvertTemperature converts between Fahrenheit and Celsius. Units
// accept "f"/"fahrenheit" and "c"/"celsius" in any case.
//
// Rounding is deliberately asymmetric: F→C keeps one decimal place,
// C→F rounds to a whole degree. Both match how each unit is normally
// displayed; round-trips are therefore only exact to ±1°F.
func ConvertTemperature(value float64, fromUnit, toUnit string) (float64, error) {
	from, err := normalizeUnit(fromUnit)
	if err != nil {
		return 0, err
	}
	to, err := normalizeUnit(toUnit)
	if err != nil {
		return 0, err
	}

	if from == to {
		return value, nil
	}
	if from == "f" {
		return math.Round((value-32)*5/9*10) / 10, nil
	}
	return math.Round(value*9/5 + 32), nil
}

func normalizeUnit(unit string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "f", "fahrenheit", "°f":
		return "f", nil
	case "c", "celsius", "°c":
		return "c", nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q (use F or C)", unit)
	}
}
