package engine

import (
	"math"
	"testing"
)

func TestConvertTemperature_FtoC_OneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{212, 100},
		{32, 0},
		{165, 73.9},
		{203, 95},
		{-40, -40},
		{98.6, 37},
	}

	for _, tt := range tests {
		got, err := ConvertTemperature(tt.in, "F", "C")
		if err != nil {
			t.Fatalf("ConvertTemperature(%v, F, C): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ConvertTemperature(%v, F, C) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertTemperature_CtoF_WholeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{100, 212},
		{0, 32},
		{73.9, 165},
		{95, 203},
		{37, 99}, // 98.6 rounds up to a whole degree
	}

	for _, tt := range tests {
		got, err := ConvertTemperature(tt.in, "C", "F")
		if err != nil {
			t.Fatalf("ConvertTemperature(%v, C, F): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ConvertTemperature(%v, C, F) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertTemperature_Identity(t *testing.T) {
	for _, unit := range []string{"F", "C", "fahrenheit", "Celsius"} {
		got, err := ConvertTemperature(155.5, unit, unit)
		if err != nil {
			t.Fatalf("ConvertTemperature(155.5, %s, %s): %v", unit, unit, err)
		}
		if got != 155.5 {
			t.Errorf("identity conversion changed the value: %v", got)
		}
	}
}

func TestConvertTemperature_RoundTripWithinOneDegree(t *testing.T) {
	// The asymmetric rounding means F→C→F is only exact to ±1°F.
	// Exact equality must NOT be asserted.
	for f := -40; f <= 500; f++ {
		c, err := ConvertTemperature(float64(f), "F", "C")
		if err != nil {
			t.Fatalf("F→C at %d: %v", f, err)
		}
		back, err := ConvertTemperature(c, "C", "F")
		if err != nil {
			t.Fatalf("C→F at %d: %v", f, err)
		}
		if math.Abs(back-float64(f)) > 1 {
			t.Errorf("round trip %d°F → %v°C → %v°F drifted more than 1°F", f, c, back)
		}
	}
}

func TestConvertTemperature_UnknownUnit(t *testing.T) {
	if _, err := ConvertTemperature(100, "K", "F"); err == nil {
		t.Error("want error for Kelvin input unit")
	}
	if _, err := ConvertTemperature(100, "F", "rankine"); err == nil {
		t.Error("want error for unknown output unit")
	}
}
