package engine

import "math"

const (
	// assumedStartTempF is the refrigerator temperature percent-complete
	// is measured from. Fixed by design; callers cannot override it.
	assumedStartTempF = 40

	// trendRateThreshold is the °F/hr band treated as flat when
	// classifying an ongoing trend. Stall confirmation in DetectStall
	// deliberately uses a looser bound.
	trendRateThreshold = 2.0

	// trendWindow caps how many of the newest readings feed the trend.
	trendWindow = 5
)

// AnalyzeTemperature builds the full progress picture for a cook in
// flight. readings are optional; with fewer than two the trend stays
// stable at rate zero. method is optional and only informs the
// recommendation text.
func (e *Engine) AnalyzeTemperature(currentF, targetF float64, proteinID, method string, readings []Reading) (TemperatureAnalysis, error) {
	p, err := e.profile(proteinID)
	if err != nil {
		return TemperatureAnalysis{}, err
	}

	a := TemperatureAnalysis{
		CurrentTemp: currentF,
		TargetTemp:  targetF,
		TempDelta:   round1(targetF - currentF),
		Trend:       TrendStable,
	}

	// Percent complete measures the climb from fridge temperature, not
	// from zero — a 40°F slab hasn't started, a 203°F brisket is done.
	if targetF > assumedStartTempF {
		pct := (currentF - assumedStartTempF) / (targetF - assumedStartTempF) * 100
		a.PercentComplete = round1(math.Min(100, math.Max(0, pct)))
	}

	a.InStallZone = p.StallRange != nil && p.StallRange.Contains(currentF)

	rate := 0.0
	if len(readings) >= 2 {
		window := readings
		if len(window) > trendWindow {
			window = window[len(window)-trendWindow:]
		}
		first, last := window[0], window[len(window)-1]
		hours := last.Time.Sub(first.Time).Hours()
		// Non-chronological or duplicate timestamps degrade to a flat
		// trend rather than an error; misordered sensor data is
		// expected in practice.
		if hours > 0 {
			rate = (last.TempF - first.TempF) / hours
			switch {
			case math.Abs(rate) < trendRateThreshold:
				if a.InStallZone {
					a.Trend = TrendStalled
				} else {
					a.Trend = TrendStable
				}
			case rate > 0:
				a.Trend = TrendRising
			default:
				a.Trend = TrendFalling
			}
		}
	}
	a.RatePerHour = round1(rate)

	// Minutes remaining is only meaningful while climbing. During a
	// stall or fall it is explicitly absent, not zero.
	if a.Trend == TrendRising && rate > 0 {
		mins := int(math.Round((targetF - currentF) / rate * 60))
		a.EstimatedMinutesRemaining = &mins
	}

	a.Recommendations = e.recommendations(a, p, method, len(readings) > 0)

	return a, nil
}

// round1 rounds to one decimal place for display; internal math keeps
// full precision until this point.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
