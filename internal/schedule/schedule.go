// Package schedule derives cook start times by working backward from
// a target serving time: cook estimate + rest + a confidence-dependent
// safety buffer.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// Buffer minutes by estimate confidence. The buffer absorbs the
// engine's own stated uncertainty: the less it trusts the estimate,
// the earlier you light the fire.
const (
	bufferLowMins    = 120
	bufferMediumMins = 60
	bufferHighMins   = 30
)

// Plan is a computed cook schedule.
type Plan struct {
	StartTime     time.Time               `json:"start_time"`
	CookTime      engine.CookTimeEstimate `json:"cook_time"`
	RestMinutes   int                     `json:"rest_minutes"`
	BufferMinutes int                     `json:"buffer_minutes"`
}

// Calculator derives cook schedules from engine estimates.
type Calculator struct {
	engine *engine.Engine
}

// NewCalculator creates a Calculator over the given engine.
func NewCalculator(e *engine.Engine) *Calculator {
	return &Calculator{engine: e}
}

// Engine exposes the underlying engine (for default-method lookups).
func (c *Calculator) Engine() *engine.Engine {
	return c.engine
}

// StartTime computes when to start cooking so the food is rested and
// ready at servingTime. Errors from the underlying estimate (unknown
// protein, etc.) propagate unchanged in meaning.
func (c *Calculator) StartTime(proteinID string, weightLbs float64, method string, servingTime time.Time, smokerTempF *float64) (Plan, error) {
	est, err := c.engine.EstimateCookTime(proteinID, weightLbs, method, smokerTempF)
	if err != nil {
		return Plan{}, fmt.Errorf("estimating cook time: %w", err)
	}

	restMins := 0
	if p, ok := c.engine.Base().Profile(proteinID); ok && p.RestRequired {
		restMins = p.RestMinutes
	}

	buffer := bufferFor(est.Confidence)
	lead := time.Duration(math.Round(est.TotalMinutes)+float64(restMins+buffer)) * time.Minute

	return Plan{
		StartTime:     servingTime.Add(-lead),
		CookTime:      est,
		RestMinutes:   restMins,
		BufferMinutes: buffer,
	}, nil
}

func bufferFor(c engine.Confidence) int {
	switch c {
	case engine.ConfidenceLow:
		return bufferLowMins
	case engine.ConfidenceMedium:
		return bufferMediumMins
	default:
		return bufferHighMins
	}
}
