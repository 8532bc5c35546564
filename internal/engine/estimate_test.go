package engine

import (
	"math"
	"strings"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func TestEstimateCookTime_BrisketLowSlow(t *testing.T) {
	e := testEngine(t)
	now := time.Date(2026, 6, 20, 6, 0, 0, 0, time.UTC)
	fixedNow(t, now)

	// 70 min/lb × 14 lb at baseline + 60 min stall buffer.
	got, err := e.EstimateCookTime("beef_brisket", 14, "smoke_low_slow", f64(225))
	if err != nil {
		t.Fatalf("EstimateCookTime: %v", err)
	}

	if want := 70.0*14 + 60; got.TotalMinutes != want {
		t.Errorf("TotalMinutes = %v, want %v", got.TotalMinutes, want)
	}
	if got.Confidence != ConfidenceLow {
		t.Errorf("Confidence = %s, want low (brisket stalls)", got.Confidence)
	}
	if want := now.Add(1040 * time.Minute); !got.EstimatedDoneTime.Equal(want) {
		t.Errorf("EstimatedDoneTime = %v, want %v", got.EstimatedDoneTime, want)
	}
	if got.Formatted != "17h 20m" {
		t.Errorf("Formatted = %q, want 17h 20m", got.Formatted)
	}

	var stallNote, wrapNote bool
	for _, a := range got.Assumptions {
		if strings.Contains(a, "buffer for the stall") {
			stallNote = true
		}
		if strings.Contains(a, "30-50%") {
			wrapNote = true
		}
	}
	if !stallNote || !wrapNote {
		t.Errorf("missing stall assumptions, got %v", got.Assumptions)
	}
}

func TestEstimateCookTime_BaselineTempIsNeutral(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	plain, err := e.EstimateCookTime("whole_chicken", 5, "grill_indirect", nil)
	if err != nil {
		t.Fatalf("unadjusted: %v", err)
	}
	// grill_indirect is a hot/fast method; its baseline is 325°F.
	adjusted, err := e.EstimateCookTime("whole_chicken", 5, "grill_indirect", f64(325))
	if err != nil {
		t.Fatalf("adjusted: %v", err)
	}

	if plain.TotalMinutes != adjusted.TotalMinutes {
		t.Errorf("baseline smoker temp changed the estimate: %v != %v",
			adjusted.TotalMinutes, plain.TotalMinutes)
	}
}

func TestEstimateCookTime_HotterCooksFaster(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	at225, err := e.EstimateCookTime("pork_butt", 8, "smoke_low_slow", f64(225))
	if err != nil {
		t.Fatalf("at 225: %v", err)
	}
	at275, err := e.EstimateCookTime("pork_butt", 8, "smoke_low_slow", f64(275))
	if err != nil {
		t.Fatalf("at 275: %v", err)
	}

	if at275.TotalMinutes >= at225.TotalMinutes {
		t.Errorf("hotter pit should shorten the cook: %v >= %v",
			at275.TotalMinutes, at225.TotalMinutes)
	}
	// 275 is 50 over baseline: adjustment 1 − 50/250 = 0.8.
	want := 90.0*8*0.8 + 60
	if math.Abs(at275.TotalMinutes-want) > 1e-9 {
		t.Errorf("TotalMinutes = %v, want %v", at275.TotalMinutes, want)
	}
}

func TestEstimateCookTime_AdjustmentClamped(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	tests := []struct {
		name       string
		smokerTemp float64
		wantAdjust float64
	}{
		{"far above baseline clamps to 0.5", 600, 0.5},
		{"far below baseline clamps to 1.5", 50, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EstimateCookTime("pork_butt", 8, "smoke_low_slow", f64(tt.smokerTemp))
			if err != nil {
				t.Fatalf("EstimateCookTime: %v", err)
			}
			want := 90.0*8*tt.wantAdjust + 60
			if math.Abs(got.TotalMinutes-want) > 1e-9 {
				t.Errorf("TotalMinutes = %v, want %v", got.TotalMinutes, want)
			}
		})
	}
}

func TestEstimateCookTime_UnsupportedMethodDegrades(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	// Direct grilling a packer brisket is in the table with zero min/lb.
	got, err := e.EstimateCookTime("beef_brisket", 14, "grill_direct", nil)
	if err != nil {
		t.Fatalf("EstimateCookTime should not fail for a zero-rate method: %v", err)
	}
	if got.TotalMinutes != 0 {
		t.Errorf("TotalMinutes = %v, want 0", got.TotalMinutes)
	}
	if got.Confidence != ConfidenceLow {
		t.Errorf("Confidence = %s, want low", got.Confidence)
	}
	if len(got.Warnings) == 0 {
		t.Fatal("expected a not-recommended warning")
	}
	if !strings.Contains(got.Warnings[0], "not a recommended method") {
		t.Errorf("Warnings[0] = %q", got.Warnings[0])
	}
}

func TestEstimateCookTime_MethodMissingFromTableDegrades(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	got, err := e.EstimateCookTime("salmon", 2, "smoke_hot_fast", nil)
	if err != nil {
		t.Fatalf("EstimateCookTime: %v", err)
	}
	if got.TotalMinutes != 0 || len(got.Warnings) == 0 {
		t.Errorf("want zero estimate + warning, got %v / %v", got.TotalMinutes, got.Warnings)
	}
}

func TestEstimateCookTime_RestReportedNotAdded(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	got, err := e.EstimateCookTime("beef_prime_rib", 6, "oven_roast", nil)
	if err != nil {
		t.Fatalf("EstimateCookTime: %v", err)
	}
	if want := 18.0 * 6; got.TotalMinutes != want {
		t.Errorf("TotalMinutes = %v, want %v (rest must not be added)", got.TotalMinutes, want)
	}
	var restNote bool
	for _, a := range got.Assumptions {
		if strings.Contains(a, "30 minutes of rest") {
			restNote = true
		}
	}
	if !restNote {
		t.Errorf("rest assumption missing, got %v", got.Assumptions)
	}
}

func TestEstimateCookTime_ConfidenceTiers(t *testing.T) {
	e := testEngine(t)
	fixedNow(t, time.Now())

	tests := []struct {
		name    string
		protein string
		method  string
		want    Confidence
	}{
		{"stalling cut is low", "pork_butt", "smoke_low_slow", ConfidenceLow},
		{"quick cook is high", "whole_chicken", "oven_roast", ConfidenceHigh},
		{"long non-stalling cook is medium", "pork_ribs", "smoke_low_slow", ConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EstimateCookTime(tt.protein, 5, tt.method, nil)
			if err != nil {
				t.Fatalf("EstimateCookTime: %v", err)
			}
			if got.Confidence != tt.want {
				t.Errorf("Confidence = %s, want %s", got.Confidence, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{1040, "17h 20m"},
		{59.6, "1h"}, // rounds before formatting
	}

	for _, tt := range tests {
		if got := formatDuration(tt.minutes); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
