package knowledge

// Builtin returns the compiled-in knowledge base. The table is built
// once per call; callers share a single instance via the composition
// root.
//
// Temperatures are °F. Minutes-per-pound values assume the method's
// typical pit temperature (225°F low-and-slow, 325°F hot-and-fast) and
// are adjusted by the engine when the caller reports a different
// smoker temperature. A zero minutes-per-pound entry marks a method
// that is defined but not recommended for that cut.
func Builtin() *Base {
	b, err := NewBase(builtinProteins(), builtinMethods(), builtinDoneness())
	if err != nil {
		// The builtin table is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return b
}

func builtinMethods() []MethodInfo {
	return []MethodInfo{
		{
			ID:          "smoke_low_slow",
			Name:        "Low & Slow Smoke",
			HotFast:     false,
			TempLowF:    225,
			TempHighF:   250,
			Description: "Traditional offset/pellet smoking at 225-250°F. Maximum smoke flavor and bark development.",
		},
		{
			ID:          "smoke_hot_fast",
			Name:        "Hot & Fast Smoke",
			HotFast:     true,
			TempLowF:    300,
			TempHighF:   350,
			Description: "Smoking at 300-350°F. Cuts cook time roughly in half with a lighter smoke profile.",
		},
		{
			ID:          "grill_direct",
			Name:        "Direct Grilling",
			HotFast:     true,
			TempLowF:    400,
			TempHighF:   500,
			Description: "High heat directly over the coals. For steaks, chops, and quick-cooking cuts.",
		},
		{
			ID:          "grill_indirect",
			Name:        "Indirect Grilling",
			HotFast:     true,
			TempLowF:    325,
			TempHighF:   375,
			Description: "Two-zone fire with the food away from the coals. Roasting on the grill.",
		},
		{
			ID:          "oven_roast",
			Name:        "Oven Roast",
			HotFast:     true,
			TempLowF:    300,
			TempHighF:   350,
			Description: "Conventional oven roasting. No smoke, but the same temperature targets apply.",
		},
	}
}

func builtinDoneness() []DonenessInfo {
	return []DonenessInfo{
		{ID: "rare", Label: "Rare", Description: "Cool red center."},
		{ID: "medium_rare", Label: "Medium Rare", Description: "Warm red center. The steakhouse default."},
		{ID: "medium", Label: "Medium", Description: "Warm pink center."},
		{ID: "medium_well", Label: "Medium Well", Description: "Slightly pink center."},
		{ID: "well_done", Label: "Well Done", Description: "No pink."},
		{ID: "safe", Label: "Safe Minimum", Description: "USDA safe minimum internal temperature."},
		{ID: "tender", Label: "Probe Tender", Description: "Probe slides in like butter. Collagen fully rendered."},
		{ID: "pulled", Label: "Pullable", Description: "Shreds by hand. For pulled pork and similar."},
		{ID: "sliced", Label: "Sliceable", Description: "Firm enough to slice cleanly."},
		{ID: "flaky", Label: "Flaky", Description: "Fish flakes with a fork."},
	}
}

func builtinProteins() []ProteinProfile {
	return []ProteinProfile{
		{
			ID:               "beef_brisket",
			Name:             "Beef Brisket (Packer)",
			Category:         CategoryBeef,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      60,
			CarryoverDegrees: 10,
			Doneness: []DonenessTemp{
				{Level: "tender", TempF: 203},
				{Level: "sliced", TempF: 195},
			},
			Methods:    []string{"smoke_low_slow", "smoke_hot_fast", "oven_roast"},
			StallRange: &StallRange{StartF: 150, EndF: 170},
			MinutesPerPound: map[string]float64{
				"smoke_low_slow": 70,
				"smoke_hot_fast": 45,
				"oven_roast":     60,
				"grill_direct":   0,
			},
			Tips: []string{
				"Separate the point from the flat if they finish at different times.",
				"Wrap in butcher paper around 165°F to push through the stall while keeping bark.",
				"Rest in a dry cooler for at least an hour — two is better.",
			},
		},
		{
			ID:               "pork_butt",
			Name:             "Pork Butt (Boston)",
			Category:         CategoryPork,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      45,
			CarryoverDegrees: 10,
			Doneness: []DonenessTemp{
				{Level: "pulled", TempF: 205},
				{Level: "sliced", TempF: 185},
			},
			Methods:    []string{"smoke_low_slow", "smoke_hot_fast", "oven_roast"},
			StallRange: &StallRange{StartF: 150, EndF: 165},
			MinutesPerPound: map[string]float64{
				"smoke_low_slow": 90,
				"smoke_hot_fast": 60,
				"oven_roast":     75,
			},
			Tips: []string{
				"The bone wiggles free when it's done — a better test than any single temperature.",
				"Pork butt is forgiving: an hour either way rarely ruins it.",
			},
		},
		{
			ID:               "pork_ribs",
			Name:             "Pork Ribs (Spare/St. Louis)",
			Category:         CategoryPork,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      15,
			CarryoverDegrees: 5,
			Doneness: []DonenessTemp{
				{Level: "tender", TempF: 195},
				{Level: "sliced", TempF: 190},
			},
			Methods: []string{"smoke_low_slow", "grill_indirect"},
			MinutesPerPound: map[string]float64{
				"smoke_low_slow": 75,
				"grill_indirect": 50,
				"grill_direct":   0,
			},
			Tips: []string{
				"Use the bend test: pick up the rack with tongs — done ribs crack at the surface.",
				"The 3-2-1 method overcooks St. Louis cut; check tenderness at the 5 hour mark.",
			},
		},
		{
			ID:               "beef_prime_rib",
			Name:             "Prime Rib (Standing Rib Roast)",
			Category:         CategoryBeef,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      30,
			CarryoverDegrees: 8,
			Doneness: []DonenessTemp{
				{Level: "medium_rare", TempF: 135},
				{Level: "rare", TempF: 125},
				{Level: "medium", TempF: 145},
			},
			Methods: []string{"oven_roast", "smoke_low_slow", "grill_indirect"},
			MinutesPerPound: map[string]float64{
				"oven_roast":     18,
				"smoke_low_slow": 35,
				"grill_indirect": 20,
			},
			Tips: []string{
				"Reverse sear: smoke to 10°F under the pull temp, rest, then blast at 500°F for crust.",
				"A big roast carries over more than a steak — pull earlier than feels right.",
			},
		},
		{
			ID:               "whole_chicken",
			Name:             "Whole Chicken",
			Category:         CategoryPoultry,
			SafeTempF:        165,
			RestRequired:     true,
			RestMinutes:      15,
			CarryoverDegrees: 5,
			Doneness: []DonenessTemp{
				{Level: "safe", TempF: 165},
				{Level: "well_done", TempF: 175},
			},
			Methods: []string{"grill_indirect", "smoke_low_slow", "oven_roast"},
			MinutesPerPound: map[string]float64{
				"grill_indirect": 20,
				"smoke_low_slow": 40,
				"smoke_hot_fast": 25,
				"oven_roast":     18,
			},
			Tips: []string{
				"Measure in the thickest part of the thigh without touching bone.",
				"Smoked chicken skin turns rubbery below 300°F — finish hot for crisp skin.",
			},
		},
		{
			ID:               "chicken_breast",
			Name:             "Chicken Breast (Boneless)",
			Category:         CategoryPoultry,
			SafeTempF:        165,
			RestRequired:     false,
			RestMinutes:      0,
			CarryoverDegrees: 5,
			Doneness: []DonenessTemp{
				{Level: "safe", TempF: 165},
			},
			Methods: []string{"grill_direct", "oven_roast", "smoke_low_slow"},
			MinutesPerPound: map[string]float64{
				"grill_direct":   15,
				"oven_roast":     20,
				"smoke_low_slow": 35,
			},
			Tips: []string{
				"Pull at 160°F — carryover lands it at the safe 165°F without drying out.",
				"Pound to even thickness so the thin end doesn't overcook.",
			},
		},
		{
			ID:               "whole_turkey",
			Name:             "Whole Turkey",
			Category:         CategoryPoultry,
			SafeTempF:        165,
			RestRequired:     true,
			RestMinutes:      30,
			CarryoverDegrees: 8,
			Doneness: []DonenessTemp{
				{Level: "safe", TempF: 165},
			},
			Methods: []string{"smoke_low_slow", "oven_roast", "grill_indirect"},
			MinutesPerPound: map[string]float64{
				"smoke_low_slow": 30,
				"smoke_hot_fast": 20,
				"oven_roast":     15,
				"grill_indirect": 18,
			},
			Tips: []string{
				"Spatchcock it — a flat bird cooks evenly and nearly twice as fast.",
				"Don't smoke a bird over 14 pounds low-and-slow; it lingers too long in the danger zone.",
			},
		},
		{
			ID:               "pork_tenderloin",
			Name:             "Pork Tenderloin",
			Category:         CategoryPork,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      10,
			CarryoverDegrees: 5,
			Doneness: []DonenessTemp{
				{Level: "medium", TempF: 145},
				{Level: "medium_well", TempF: 150},
			},
			Methods: []string{"grill_direct", "grill_indirect", "oven_roast"},
			MinutesPerPound: map[string]float64{
				"grill_direct":   15,
				"grill_indirect": 20,
				"oven_roast":     22,
				"smoke_low_slow": 45,
			},
			Tips: []string{
				"Modern pork is safe at 145°F with a blush of pink — don't cook it grey.",
			},
		},
		{
			ID:               "beef_tenderloin",
			Name:             "Beef Tenderloin",
			Category:         CategoryBeef,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      15,
			CarryoverDegrees: 5,
			Doneness: []DonenessTemp{
				{Level: "medium_rare", TempF: 135},
				{Level: "rare", TempF: 125},
				{Level: "medium", TempF: 145},
			},
			Methods: []string{"oven_roast", "grill_indirect", "grill_direct"},
			MinutesPerPound: map[string]float64{
				"oven_roast":     15,
				"grill_indirect": 15,
				"grill_direct":   12,
				"smoke_low_slow": 30,
			},
			Tips: []string{
				"Tuck and tie the tail end under so the roast is an even cylinder.",
				"Lean cuts carry over less — don't over-pull.",
			},
		},
		{
			ID:               "salmon",
			Name:             "Salmon Fillet",
			Category:         CategoryFish,
			SafeTempF:        145,
			RestRequired:     false,
			RestMinutes:      0,
			CarryoverDegrees: 3,
			Doneness: []DonenessTemp{
				{Level: "medium", TempF: 130},
				{Level: "flaky", TempF: 140},
				{Level: "safe", TempF: 145},
			},
			Methods: []string{"smoke_low_slow", "grill_direct", "oven_roast"},
			MinutesPerPound: map[string]float64{
				"smoke_low_slow": 40,
				"grill_direct":   12,
				"oven_roast":     18,
			},
			Tips: []string{
				"White albumin beads on the surface mean it's cooking too hot.",
				"130°F gives a silky medium; USDA's 145°F is noticeably firmer.",
			},
		},
		{
			ID:               "lamb_leg",
			Name:             "Leg of Lamb",
			Category:         CategoryLamb,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      20,
			CarryoverDegrees: 8,
			Doneness: []DonenessTemp{
				{Level: "medium_rare", TempF: 135},
				{Level: "medium", TempF: 145},
				{Level: "medium_well", TempF: 155},
			},
			Methods: []string{"grill_indirect", "oven_roast", "smoke_low_slow"},
			MinutesPerPound: map[string]float64{
				"grill_indirect": 25,
				"oven_roast":     20,
				"smoke_low_slow": 35,
			},
			Tips: []string{
				"Bone-in legs cook unevenly; butterflied legs grill beautifully.",
			},
		},
		{
			ID:               "tri_tip",
			Name:             "Tri-Tip",
			Category:         CategoryBeef,
			SafeTempF:        145,
			RestRequired:     true,
			RestMinutes:      15,
			CarryoverDegrees: 8,
			Doneness: []DonenessTemp{
				{Level: "medium_rare", TempF: 135},
				{Level: "medium", TempF: 145},
			},
			Methods: []string{"smoke_low_slow", "grill_direct", "grill_indirect"},
			MinutesPerPound: map[string]float64{
				"smoke_low_slow": 30,
				"grill_direct":   20,
				"grill_indirect": 25,
			},
			Tips: []string{
				"Slice against the grain — it changes direction halfway through the cut.",
				"Santa Maria style: smoke to 10°F under target, then sear over red oak.",
			},
		},
	}
}
