package engine

import (
	"fmt"
	"math"

	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
)

const (
	// stallRateThreshold is the °F/hr bound below which an in-zone cut
	// is confirmed stalled. Looser than the 2°F/hr trend band on
	// purpose: confirmation tolerates slow creep that trend
	// classification would still call movement.
	stallRateThreshold = 3.0

	// stallWindow caps how many of the newest readings feed stall
	// confirmation.
	stallWindow = 6

	// stallMinReadings is how many readings confirmation needs before
	// committing to a verdict.
	stallMinReadings = 3
)

// DetectStall decides whether a cook is stalled and for how long.
// readings must be chronological, oldest first.
func (e *Engine) DetectStall(proteinID string, currentF float64, readings []Reading) (StallResult, error) {
	p, err := e.profile(proteinID)
	if err != nil {
		return StallResult{}, err
	}

	if p.StallRange == nil {
		return StallResult{
			Recommendation: fmt.Sprintf("%s doesn't typically stall — steady progress is expected.", p.Name),
		}, nil
	}

	zone := *p.StallRange
	if currentF < zone.StartF {
		return StallResult{
			Recommendation: fmt.Sprintf("Approaching the stall zone (%.0f-%.0f°F). Expect progress to slow soon.",
				zone.StartF, zone.EndF),
		}, nil
	}
	if currentF > zone.EndF {
		return StallResult{
			Recommendation: fmt.Sprintf("You've pushed through the stall zone (%.0f-%.0f°F) — smooth sailing to the target.",
				zone.StartF, zone.EndF),
		}, nil
	}

	window := readings
	if len(window) > stallWindow {
		window = window[len(window)-stallWindow:]
	}
	if len(window) < stallMinReadings {
		return StallResult{
			InStallZone:    true,
			Recommendation: "In the stall zone, but more temperature readings are needed to confirm a stall.",
		}, nil
	}

	first, last := window[0], window[len(window)-1]
	elapsedMins := last.Time.Sub(first.Time).Minutes()
	if elapsedMins <= 0 {
		// Broken timestamps can't confirm anything.
		return StallResult{
			InStallZone:    true,
			Recommendation: "In the stall zone, but the readings don't span enough time to confirm a stall.",
		}, nil
	}

	rate := (last.TempF - first.TempF) / elapsedMins * 60
	if rate >= stallRateThreshold {
		return StallResult{
			InStallZone: true,
			Recommendation: fmt.Sprintf("In the stall zone but still climbing at %.1f°F/hr — not stalled yet.",
				round1(rate)),
		}, nil
	}

	duration := stallDuration(readings, zone)

	return StallResult{
		IsStalled:      true,
		InStallZone:    true,
		DurationMins:   duration,
		Recommendation: stallAdvice(duration),
	}, nil
}

// stallDuration measures the most recent contiguous run of in-zone
// readings, scanning backward from the newest and stopping at the
// first reading outside the zone.
func stallDuration(readings []Reading, zone knowledge.StallRange) int {
	if len(readings) == 0 {
		return 0
	}
	newest := readings[len(readings)-1]
	runStart := newest
	for i := len(readings) - 1; i >= 0; i-- {
		if !zone.Contains(readings[i].TempF) {
			break
		}
		runStart = readings[i]
	}
	return int(math.Round(newest.Time.Sub(runStart.Time).Minutes()))
}

// stallAdvice picks the recommendation tier for a confirmed stall.
func stallAdvice(durationMins int) string {
	switch {
	case durationMins < 60:
		return "Confirmed stall. This is normal and can last 2-4 hours; ride it out or wrap."
	case durationMins <= 180:
		return fmt.Sprintf("Stalled for about %d minutes. Consider wrapping in foil or butcher paper to push through.",
			durationMins)
	default:
		return fmt.Sprintf("Extended stall (%d minutes). Wrap it now: the bark has set and you're just losing time.",
			durationMins)
	}
}
