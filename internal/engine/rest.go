package engine

import (
	"fmt"

	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
)

// coolerRestMinutes is the rest length at or above which a beef roast
// gets the faux-cambro (dry cooler) treatment instead of a loose tent.
const coolerRestMinutes = 30

// CalculateRestTime predicts carryover and produces rest instructions.
// targetFinalF is optional: when supplied, the result warns if
// carryover will undershoot it or overshoot it by more than 5°F.
func (e *Engine) CalculateRestTime(proteinID string, currentF float64, targetFinalF *float64) (RestResult, error) {
	p, err := e.profile(proteinID)
	if err != nil {
		return RestResult{}, err
	}

	r := RestResult{
		CarryoverDegrees:  p.CarryoverDegrees,
		ExpectedFinalTemp: currentF + p.CarryoverDegrees,
	}

	if !p.RestRequired {
		r.Instructions = append(r.Instructions,
			fmt.Sprintf("%s doesn't need a structured rest — serve immediately.", p.Name))
		return r, nil
	}

	r.RestMinutes = p.RestMinutes
	r.Instructions = append(r.Instructions,
		fmt.Sprintf("Rest for %d minutes. Expect the internal temperature to rise about %.0f°F to roughly %.0f°F.",
			p.RestMinutes, p.CarryoverDegrees, r.ExpectedFinalTemp))

	switch {
	case p.Category == knowledge.CategoryBeef && p.RestMinutes >= coolerRestMinutes:
		r.Instructions = append(r.Instructions,
			"Wrap it and rest in a dry cooler (faux cambro) — large beef roasts hold for hours and only get better.")
	case p.Category == knowledge.CategoryPoultry:
		r.Instructions = append(r.Instructions,
			"Rest uncovered — tenting poultry steams the skin and ruins the crispness.")
	default:
		r.Instructions = append(r.Instructions,
			"Tent loosely with foil while resting.")
	}

	if targetFinalF != nil {
		switch {
		case r.ExpectedFinalTemp < *targetFinalF:
			r.Instructions = append(r.Instructions,
				fmt.Sprintf("Heads up: carryover should only reach about %.0f°F, short of your %.0f°F target — it needs more time on the heat.",
					r.ExpectedFinalTemp, *targetFinalF))
		case r.ExpectedFinalTemp > *targetFinalF+5:
			r.Instructions = append(r.Instructions,
				fmt.Sprintf("Carryover will overshoot your %.0f°F target to about %.0f°F. Next time pull at %.0f°F.",
					*targetFinalF, r.ExpectedFinalTemp, *targetFinalF-p.CarryoverDegrees))
		}
	}

	return r, nil
}
