package engine

import (
	"fmt"
	"strings"

	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
)

// recommendations is the synthesizer: it turns the numeric analysis
// into guidance strings. The ladder runs top to bottom with no early
// exit — every clause whose condition holds appends, so output order
// is fixed regardless of severity.
func (e *Engine) recommendations(a TemperatureAnalysis, p knowledge.ProteinProfile, method string, hasReadings bool) []string {
	var recs []string

	if a.InStallZone && a.Trend == TrendStalled {
		recs = append(recs,
			"You've hit the stall — this plateau is normal and can last hours. Don't raise the heat in a panic.",
			"Consider wrapping in foil or butcher paper (Texas crutch) to push through faster.",
		)
	}

	if a.InStallZone && a.Trend == TrendRising {
		recs = append(recs,
			"You're in the typical stall zone but the temperature is still climbing — keep doing what you're doing.")
	}

	delta := a.TargetTemp - a.CurrentTemp

	if delta <= p.CarryoverDegrees+5 {
		recs = append(recs,
			fmt.Sprintf("Getting close! Consider pulling at %.0f°F — carryover will take it the rest of the way.",
				a.TargetTemp-p.CarryoverDegrees))
	}

	if delta <= 0 {
		recs = append(recs, "Target temperature reached — time to pull it off the heat.")
		if p.RestRequired {
			recs = append(recs,
				fmt.Sprintf("Rest for %d minutes before slicing.", p.RestMinutes))
		}
	}

	if a.Trend == TrendFalling {
		recs = append(recs,
			"Temperature is falling — check your heat source and the probe placement.")
		if strings.Contains(method, "smoke") {
			recs = append(recs,
				"Check your fuel and airflow: add charcoal or pellets and open the intake vents.")
		}
	}

	if a.PercentComplete < 25 && hasReadings {
		recs = append(recs,
			"Early stages of the cook — be patient and resist opening the lid.")
	}

	return recs
}
