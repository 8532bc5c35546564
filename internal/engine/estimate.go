package engine

import (
	"fmt"
	"math"
	"time"
)

const (
	// Baseline pit temperatures the minutes-per-pound tables assume.
	lowSlowBaselineF = 225
	hotFastBaselineF = 325

	// stallBufferMinutes is the flat pad added to any estimate for a
	// cut that stalls. The plateau length itself is unpredictable.
	stallBufferMinutes = 60
)

// EstimateCookTime projects total cook duration for a protein, weight,
// and method. smokerTempF is optional (nil = assume the method's
// baseline); when supplied, the estimate scales linearly with the
// deviation from baseline, capped at ±50%.
//
// Rest time is reported as an assumption but never added to the total:
// the total is time on the heat.
func (e *Engine) EstimateCookTime(proteinID string, weightLbs float64, method string, smokerTempF *float64) (CookTimeEstimate, error) {
	p, err := e.profile(proteinID)
	if err != nil {
		return CookTimeEstimate{}, err
	}

	minPerLb := p.MinutesPerPound[method]
	if minPerLb == 0 {
		// Not an error: guidance degrades to a zero estimate with a
		// warning so the caller can pick a better method.
		return CookTimeEstimate{
			TotalMinutes:      0,
			Formatted:         formatDuration(0),
			EstimatedDoneTime: timeNow(),
			Confidence:        ConfidenceLow,
			Warnings: []string{
				fmt.Sprintf("%s is not a recommended method for %s. Recommended: %s.",
					method, p.Name, p.DefaultMethod()),
			},
		}, nil
	}

	baseline := float64(lowSlowBaselineF)
	if m, ok := e.kb.Method(method); ok && m.HotFast {
		baseline = hotFastBaselineF
	}

	adjustment := 1.0
	var assumptions []string
	if smokerTempF != nil {
		// Hotter than baseline cooks faster, so the multiplier shrinks.
		adjustment = 1 - (*smokerTempF-baseline)/250
		adjustment = math.Min(1.5, math.Max(0.5, adjustment))
		assumptions = append(assumptions,
			fmt.Sprintf("Adjusted for a %.0f°F smoker against the %.0f°F baseline.", *smokerTempF, baseline))
	} else {
		assumptions = append(assumptions,
			fmt.Sprintf("Assuming the method's baseline pit temperature of %.0f°F.", baseline))
	}

	totalMinutes := minPerLb * weightLbs * adjustment

	if p.StallRange != nil {
		totalMinutes += stallBufferMinutes
		assumptions = append(assumptions,
			fmt.Sprintf("Includes a %d minute buffer for the stall (%.0f-%.0f°F plateau).",
				stallBufferMinutes, p.StallRange.StartF, p.StallRange.EndF),
			"Wrapping in foil or butcher paper (Texas crutch) can cut stall time by 30-50%.",
		)
	}

	if p.RestRequired {
		assumptions = append(assumptions,
			fmt.Sprintf("Plan an additional %d minutes of rest after pulling (not included in cook time).", p.RestMinutes))
	}

	confidence := confidenceFor(p.StallRange != nil, minPerLb)

	return CookTimeEstimate{
		TotalMinutes:      totalMinutes,
		Formatted:         formatDuration(totalMinutes),
		EstimatedDoneTime: timeNow().Add(time.Duration(math.Round(totalMinutes)) * time.Minute),
		Confidence:        confidence,
		Assumptions:       assumptions,
	}, nil
}

// confidenceFor grades an estimate. Stalling cuts are always low
// confidence — the plateau dominates every other source of error.
// Among non-stalling cuts, long low-and-slow cooks drift more than
// quick ones.
func confidenceFor(stalls bool, minutesPerPound float64) Confidence {
	switch {
	case stalls:
		return ConfidenceLow
	case minutesPerPound <= 50:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// formatDuration renders whole minutes as "Xh Ym" (or "Ym" under an
// hour) for display.
func formatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	h, m := total/60, total%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
