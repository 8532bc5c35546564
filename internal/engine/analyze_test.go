package engine

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestAnalyzeTemperature_RisingBrisket(t *testing.T) {
	e := testEngine(t)
	now := time.Date(2026, 6, 20, 14, 0, 0, 0, time.UTC)

	// 145 → 165 over three hours: ~6.7°F/hr, firmly rising.
	rs := readingsAt(now, []int{180, 120, 60, 0}, []float64{145, 155, 162, 165})

	got, err := e.AnalyzeTemperature(165, 203, "beef_brisket", "smoke_low_slow", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}

	if got.Trend != TrendRising {
		t.Errorf("Trend = %s, want rising", got.Trend)
	}
	if math.Abs(got.RatePerHour-6.7) > 0.05 {
		t.Errorf("RatePerHour = %v, want ≈6.7", got.RatePerHour)
	}
	if got.EstimatedMinutesRemaining == nil {
		t.Fatal("EstimatedMinutesRemaining = nil, want a positive value while rising")
	}
	if *got.EstimatedMinutesRemaining <= 0 {
		t.Errorf("EstimatedMinutesRemaining = %d, want > 0", *got.EstimatedMinutesRemaining)
	}
	// (203−165)/6.667 × 60 ≈ 342.
	if want := 342; *got.EstimatedMinutesRemaining != want {
		t.Errorf("EstimatedMinutesRemaining = %d, want %d", *got.EstimatedMinutesRemaining, want)
	}
	// 165°F sits inside brisket's configured 150-170°F stall zone.
	if !got.InStallZone {
		t.Error("InStallZone = false, want true at 165°F (zone 150-170)")
	}
	if want := 76.7; got.PercentComplete != want {
		t.Errorf("PercentComplete = %v, want %v", got.PercentComplete, want)
	}
}

func TestAnalyzeTemperature_PercentClamped(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"below fridge temp clamps to 0", 33, 203, 0},
		{"past target clamps to 100", 210, 203, 100},
		{"exact target is 100", 203, 203, 100},
		{"midpoint", 121.5, 203, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.AnalyzeTemperature(tt.current, tt.target, "beef_brisket", "", nil)
			if err != nil {
				t.Fatalf("AnalyzeTemperature: %v", err)
			}
			if got.PercentComplete != tt.want {
				t.Errorf("PercentComplete = %v, want %v", got.PercentComplete, tt.want)
			}
		})
	}
}

func TestAnalyzeTemperature_FewReadingsStayStable(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	tests := []struct {
		name     string
		readings []Reading
	}{
		{"no readings", nil},
		{"one reading", readingsAt(now, []int{0}, []float64{120})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.AnalyzeTemperature(120, 203, "pork_butt", "", tt.readings)
			if err != nil {
				t.Fatalf("AnalyzeTemperature: %v", err)
			}
			if got.Trend != TrendStable || got.RatePerHour != 0 {
				t.Errorf("trend/rate = %s/%v, want stable/0", got.Trend, got.RatePerHour)
			}
			if got.EstimatedMinutesRemaining != nil {
				t.Errorf("EstimatedMinutesRemaining = %d, want nil", *got.EstimatedMinutesRemaining)
			}
		})
	}
}

func TestAnalyzeTemperature_NonChronologicalDegrades(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	// Newest-first order: hoursBetween comes out negative.
	rs := []Reading{
		{TempF: 165, Time: now},
		{TempF: 145, Time: now.Add(-3 * time.Hour)},
	}

	got, err := e.AnalyzeTemperature(165, 203, "beef_brisket", "", rs)
	if err != nil {
		t.Fatalf("misordered readings must not fail: %v", err)
	}
	if got.Trend != TrendStable || got.RatePerHour != 0 {
		t.Errorf("trend/rate = %s/%v, want stable/0", got.Trend, got.RatePerHour)
	}
}

func TestAnalyzeTemperature_DuplicateTimestampsDegrade(t *testing.T) {
	e := testEngine(t)
	now := time.Now()
	rs := []Reading{{TempF: 150, Time: now}, {TempF: 160, Time: now}}

	got, err := e.AnalyzeTemperature(160, 203, "beef_brisket", "", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	if got.Trend != TrendStable || got.RatePerHour != 0 {
		t.Errorf("trend/rate = %s/%v, want stable/0", got.Trend, got.RatePerHour)
	}
}

func TestAnalyzeTemperature_FlatInZoneIsStalled(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	rs := readingsAt(now, []int{120, 60, 0}, []float64{159, 160, 160})

	got, err := e.AnalyzeTemperature(160, 203, "beef_brisket", "smoke_low_slow", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	if got.Trend != TrendStalled {
		t.Errorf("Trend = %s, want stalled (flat at 160 inside 150-170)", got.Trend)
	}
	if got.EstimatedMinutesRemaining != nil {
		t.Error("EstimatedMinutesRemaining must be nil during a stall")
	}
}

func TestAnalyzeTemperature_FlatOutsideZoneIsStable(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	// whole_chicken has no stall range; a flat trend is just stable.
	rs := readingsAt(now, []int{120, 60, 0}, []float64{159, 160, 160})

	got, err := e.AnalyzeTemperature(160, 165, "whole_chicken", "", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	if got.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable", got.Trend)
	}
}

func TestAnalyzeTemperature_StallZoneBoundsInclusive(t *testing.T) {
	e := testEngine(t)

	// Brisket zone is 150-170 inclusive on both ends.
	for _, temp := range []float64{150, 170} {
		got, err := e.AnalyzeTemperature(temp, 203, "beef_brisket", "", nil)
		if err != nil {
			t.Fatalf("AnalyzeTemperature(%v): %v", temp, err)
		}
		if !got.InStallZone {
			t.Errorf("InStallZone at %v°F = false, want true (inclusive boundary)", temp)
		}
	}
	for _, temp := range []float64{149.9, 170.1} {
		got, err := e.AnalyzeTemperature(temp, 203, "beef_brisket", "", nil)
		if err != nil {
			t.Fatalf("AnalyzeTemperature(%v): %v", temp, err)
		}
		if got.InStallZone {
			t.Errorf("InStallZone at %v°F = true, want false", temp)
		}
	}
}

func TestAnalyzeTemperature_TrendWindowUsesLastFive(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	// Seven readings; the first two are a wild cold start that must be
	// ignored. The last five run 150→160 over 4h: 2.5°F/hr, rising.
	rs := readingsAt(now,
		[]int{360, 300, 240, 180, 120, 60, 0},
		[]float64{40, 90, 150, 152, 155, 158, 160})

	got, err := e.AnalyzeTemperature(160, 203, "whole_chicken", "", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	if got.Trend != TrendRising {
		t.Errorf("Trend = %s, want rising", got.Trend)
	}
	if got.RatePerHour != 2.5 {
		t.Errorf("RatePerHour = %v, want 2.5 (window of last 5 readings)", got.RatePerHour)
	}
}

// --- Recommendation ladder ---

func TestRecommendations_StalledInZone(t *testing.T) {
	e := testEngine(t)
	now := time.Now()
	rs := readingsAt(now, []int{120, 60, 0}, []float64{160, 160, 160})

	got, err := e.AnalyzeTemperature(160, 203, "beef_brisket", "smoke_low_slow", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	if len(got.Recommendations) < 2 {
		t.Fatalf("want stall warning + wrap suggestion, got %v", got.Recommendations)
	}
	if !strings.Contains(got.Recommendations[0], "stall") {
		t.Errorf("Recommendations[0] = %q, want stall plateau warning", got.Recommendations[0])
	}
	if !strings.Contains(got.Recommendations[1], "wrap") {
		t.Errorf("Recommendations[1] = %q, want wrap suggestion", got.Recommendations[1])
	}
}

func TestRecommendations_RisingThroughStall(t *testing.T) {
	e := testEngine(t)
	now := time.Now()
	rs := readingsAt(now, []int{180, 120, 60, 0}, []float64{145, 155, 162, 165})

	got, err := e.AnalyzeTemperature(165, 203, "beef_brisket", "smoke_low_slow", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	var found bool
	for _, r := range got.Recommendations {
		if strings.Contains(r, "still climbing") {
			found = true
		}
	}
	if !found {
		t.Errorf("want stall-zone encouragement, got %v", got.Recommendations)
	}
}

func TestRecommendations_TargetReachedStacksWithPullAdvice(t *testing.T) {
	e := testEngine(t)

	// delta ≤ 0 satisfies both the "getting close" gate (delta ≤
	// carryover+5) and the "target reached" gate; the ladder has no
	// early exit, so both fire, plus the rest reminder.
	got, err := e.AnalyzeTemperature(203, 203, "beef_brisket", "", nil)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}

	var gotClose, reached, rest bool
	for _, r := range got.Recommendations {
		switch {
		case strings.Contains(r, "Getting close"):
			gotClose = true
		case strings.Contains(r, "Target temperature reached"):
			reached = true
		case strings.Contains(r, "Rest for 60 minutes"):
			rest = true
		}
	}
	if !gotClose || !reached || !rest {
		t.Errorf("want close+reached+rest, got %v", got.Recommendations)
	}
}

func TestRecommendations_PullAdviceNamesExactPullTemp(t *testing.T) {
	e := testEngine(t)

	// Brisket: target 203, carryover 10 → pull at 193.
	got, err := e.AnalyzeTemperature(190, 203, "beef_brisket", "", nil)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	var found bool
	for _, r := range got.Recommendations {
		if strings.Contains(r, "193°F") {
			found = true
		}
	}
	if !found {
		t.Errorf("want pull advice naming 193°F, got %v", got.Recommendations)
	}
}

func TestRecommendations_FallingOnSmoker(t *testing.T) {
	e := testEngine(t)
	now := time.Now()
	rs := readingsAt(now, []int{60, 0}, []float64{160, 150})

	got, err := e.AnalyzeTemperature(150, 203, "beef_brisket", "smoke_low_slow", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}

	var heat, fuel bool
	for _, r := range got.Recommendations {
		if strings.Contains(r, "falling") {
			heat = true
		}
		if strings.Contains(r, "fuel") {
			fuel = true
		}
	}
	if !heat {
		t.Errorf("want heat-source warning, got %v", got.Recommendations)
	}
	if !fuel {
		t.Errorf("want fuel/airflow suggestion for smoke methods, got %v", got.Recommendations)
	}
}

func TestRecommendations_FallingOffSmokerSkipsFuelAdvice(t *testing.T) {
	e := testEngine(t)
	now := time.Now()
	rs := readingsAt(now, []int{60, 0}, []float64{140, 130})

	got, err := e.AnalyzeTemperature(130, 165, "whole_chicken", "oven_roast", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	for _, r := range got.Recommendations {
		if strings.Contains(r, "fuel") {
			t.Errorf("fuel advice must be smoke-only, got %v", got.Recommendations)
		}
	}
}

func TestRecommendations_EarlyStagesNeedsReadings(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	// Without readings the patience nudge must not fire.
	got, err := e.AnalyzeTemperature(60, 203, "beef_brisket", "", nil)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	for _, r := range got.Recommendations {
		if strings.Contains(r, "patient") {
			t.Errorf("patience nudge fired without readings: %v", got.Recommendations)
		}
	}

	rs := readingsAt(now, []int{60, 0}, []float64{50, 60})
	got, err = e.AnalyzeTemperature(60, 203, "beef_brisket", "", rs)
	if err != nil {
		t.Fatalf("AnalyzeTemperature: %v", err)
	}
	var found bool
	for _, r := range got.Recommendations {
		if strings.Contains(r, "patient") {
			found = true
		}
	}
	if !found {
		t.Errorf("want patience nudge below 25%% with readings, got %v", got.Recommendations)
	}
}
