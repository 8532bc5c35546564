package engine

import (
	"strings"
	"testing"
)

func hasInstruction(instructions []string, substr string) bool {
	for _, s := range instructions {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestCalculateRestTime_PrimeRibShortfall(t *testing.T) {
	e := testEngine(t)

	// Prime rib carries over 8°F: 120 + 8 = 128, short of a 130 target.
	got, err := e.CalculateRestTime("beef_prime_rib", 120, f64(130))
	if err != nil {
		t.Fatalf("CalculateRestTime: %v", err)
	}
	if got.ExpectedFinalTemp != 128 {
		t.Errorf("ExpectedFinalTemp = %v, want 128", got.ExpectedFinalTemp)
	}
	if got.RestMinutes != 30 {
		t.Errorf("RestMinutes = %d, want 30", got.RestMinutes)
	}
	if !hasInstruction(got.Instructions, "short of your 130°F target") {
		t.Errorf("want shortfall warning, got %v", got.Instructions)
	}
}

func TestCalculateRestTime_OvershootSuggestsEarlierPull(t *testing.T) {
	e := testEngine(t)

	// Brisket pulled at 203 with 10°F carryover lands at 213, more
	// than 5 over a 203 target. Suggested pull: 203 − 10 = 193.
	got, err := e.CalculateRestTime("beef_brisket", 203, f64(203))
	if err != nil {
		t.Fatalf("CalculateRestTime: %v", err)
	}
	if got.ExpectedFinalTemp != 213 {
		t.Errorf("ExpectedFinalTemp = %v, want 213", got.ExpectedFinalTemp)
	}
	if !hasInstruction(got.Instructions, "pull at 193°F") {
		t.Errorf("want earlier-pull suggestion, got %v", got.Instructions)
	}
}

func TestCalculateRestTime_SmallOvershootTolerated(t *testing.T) {
	e := testEngine(t)

	// 5°F over exactly is inside the tolerance — no warning either way.
	got, err := e.CalculateRestTime("beef_brisket", 198, f64(203))
	if err != nil {
		t.Fatalf("CalculateRestTime: %v", err)
	}
	if hasInstruction(got.Instructions, "short of") || hasInstruction(got.Instructions, "overshoot") {
		t.Errorf("no warning expected at exactly +5°F, got %v", got.Instructions)
	}
}

func TestCalculateRestTime_NoRestServeImmediately(t *testing.T) {
	e := testEngine(t)

	got, err := e.CalculateRestTime("chicken_breast", 160, nil)
	if err != nil {
		t.Fatalf("CalculateRestTime: %v", err)
	}
	if got.RestMinutes != 0 {
		t.Errorf("RestMinutes = %d, want 0", got.RestMinutes)
	}
	if got.ExpectedFinalTemp != 165 {
		t.Errorf("ExpectedFinalTemp = %v, want 165", got.ExpectedFinalTemp)
	}
	if len(got.Instructions) != 1 || !strings.Contains(got.Instructions[0], "serve immediately") {
		t.Errorf("want a single serve-immediately instruction, got %v", got.Instructions)
	}
}

func TestCalculateRestTime_CategoryTips(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name    string
		protein string
		want    string
	}{
		{"large beef roast rests in a cooler", "beef_brisket", "dry cooler"},
		{"prime rib rests in a cooler", "beef_prime_rib", "dry cooler"},
		{"poultry rests uncovered", "whole_chicken", "uncovered"},
		{"everything else gets a loose tent", "pork_tenderloin", "Tent loosely"},
		{"short beef rests get a tent too", "tri_tip", "Tent loosely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.CalculateRestTime(tt.protein, 150, nil)
			if err != nil {
				t.Fatalf("CalculateRestTime: %v", err)
			}
			if !hasInstruction(got.Instructions, tt.want) {
				t.Errorf("want %q tip, got %v", tt.want, got.Instructions)
			}
		})
	}
}
