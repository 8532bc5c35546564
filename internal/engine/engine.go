// Package engine implements the temperature-progress reasoning core:
// target resolution, cook-time estimation, trend and stall
// classification, rest/carryover prediction, and the recommendation
// ladder built on top of them.
//
// Every function is a pure computation over its arguments and the
// injected knowledge base — no I/O, no clocks other than the
// package-level timeNow hook, no shared mutable state. All
// temperatures are Fahrenheit; unit conversion is a presentation
// concern handled only by ConvertTemperature.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
)

// ErrUnknownProtein is returned when a protein id is not present in
// the knowledge base. It is a caller input error: surfaced directly,
// never retried.
var ErrUnknownProtein = errors.New("unknown protein")

// Engine computes cooking guidance against an immutable knowledge
// base. It holds no other state and is safe for concurrent use.
type Engine struct {
	kb *knowledge.Base
}

// New creates an Engine over the given knowledge base.
func New(kb *knowledge.Base) *Engine {
	return &Engine{kb: kb}
}

// Base exposes the underlying knowledge base for read-only listing.
func (e *Engine) Base() *knowledge.Base {
	return e.kb
}

// profile resolves a protein id or reports ErrUnknownProtein.
func (e *Engine) profile(proteinID string) (knowledge.ProteinProfile, error) {
	p, ok := e.kb.Profile(proteinID)
	if !ok {
		return knowledge.ProteinProfile{}, fmt.Errorf("%w: %q", ErrUnknownProtein, proteinID)
	}
	return p, nil
}

// Reading is a single caller-supplied temperature observation.
// Reading slices passed to the engine must be chronological,
// oldest first.
type Reading struct {
	TempF float64   `json:"temp"`
	Time  time.Time `json:"time"`
}

// Trend classifies how the internal temperature is moving.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
	TrendStalled Trend = "stalled"
)

// Confidence grades how much to trust a cook-time estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// TargetResult is the outcome of resolving a protein + doneness into
// concrete temperatures.
type TargetResult struct {
	ProteinID  string  `json:"protein_id"`
	Doneness   string  `json:"doneness"`
	TargetTemp float64 `json:"target_temp"`
	PullTemp   float64 `json:"pull_temp"`
	SafeTemp   float64 `json:"safe_temp"`
}

// CookTimeEstimate is a freshly computed duration projection. It has
// no identity: the done time is "now + total minutes" at call time,
// never anchored to a stored cook start.
type CookTimeEstimate struct {
	TotalMinutes      float64    `json:"total_minutes"`
	Formatted         string     `json:"formatted"`
	EstimatedDoneTime time.Time  `json:"estimated_done_time"`
	Confidence        Confidence `json:"confidence"`
	Assumptions       []string   `json:"assumptions,omitempty"`
	Warnings          []string   `json:"warnings,omitempty"`
}

// TemperatureAnalysis is the full progress picture for one moment in
// a cook.
type TemperatureAnalysis struct {
	CurrentTemp               float64  `json:"current_temp"`
	TargetTemp                float64  `json:"target_temp"`
	TempDelta                 float64  `json:"temp_delta"`
	PercentComplete           float64  `json:"percent_complete"`
	Trend                     Trend    `json:"trend"`
	RatePerHour               float64  `json:"rate_per_hour"`
	EstimatedMinutesRemaining *int     `json:"estimated_minutes_remaining,omitempty"`
	InStallZone               bool     `json:"in_stall_zone"`
	Recommendations           []string `json:"recommendations"`
}

// StallResult is the outcome of stall confirmation.
type StallResult struct {
	IsStalled      bool   `json:"is_stalled"`
	DurationMins   int    `json:"duration_minutes"`
	InStallZone    bool   `json:"in_stall_zone"`
	Recommendation string `json:"recommendation"`
}

// RestResult is the outcome of rest/carryover prediction.
type RestResult struct {
	RestMinutes       int      `json:"rest_minutes"`
	CarryoverDegrees  float64  `json:"carryover_degrees"`
	ExpectedFinalTemp float64  `json:"expected_final_temp"`
	Instructions      []string `json:"instructions"`
}
