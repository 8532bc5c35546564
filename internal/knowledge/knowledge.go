// Package knowledge holds the static BBQ knowledge base: protein
// profiles, cook-method metadata, and doneness labels.
//
// The base is an explicit immutable structure handed to the engine at
// construction — nothing in this package is looked up through package
// globals, so tests can build a synthetic base with their own profiles.
package knowledge

import (
	"fmt"
)

// Category classifies a protein for category-specific guidance
// (e.g. poultry rests uncovered, large beef roasts rest in a cooler).
type Category string

const (
	CategoryBeef    Category = "beef"
	CategoryPork    Category = "pork"
	CategoryPoultry Category = "poultry"
	CategoryLamb    Category = "lamb"
	CategoryFish    Category = "fish"
	CategoryGame    Category = "game"
)

// DonenessTemp pairs a doneness level with its target final
// temperature in °F. Profiles keep these in a slice, not a map: the
// first entry is the default when a caller doesn't ask for a specific
// doneness, and that ordering must be deterministic.
type DonenessTemp struct {
	Level string  `json:"level"`
	TempF float64 `json:"temp_f"`
}

// StallRange is the inclusive internal-temperature band where a cut's
// evaporative-cooling plateau typically occurs.
type StallRange struct {
	StartF float64 `json:"start_f"`
	EndF   float64 `json:"end_f"`
}

// Contains reports whether t falls inside the range. Both bounds are
// inclusive.
func (r StallRange) Contains(t float64) bool {
	return t >= r.StartF && t <= r.EndF
}

// ProteinProfile describes everything the engine knows about one cut.
type ProteinProfile struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Category         Category           `json:"category"`
	SafeTempF        float64            `json:"safe_temp_f"`
	RestRequired     bool               `json:"rest_required"`
	RestMinutes      int                `json:"rest_minutes"`
	CarryoverDegrees float64            `json:"carryover_degrees"`
	Doneness         []DonenessTemp     `json:"doneness"`
	Methods          []string           `json:"methods"`
	StallRange       *StallRange        `json:"stall_range,omitempty"`
	MinutesPerPound  map[string]float64 `json:"minutes_per_pound"`
	Tips             []string           `json:"tips,omitempty"`
}

// DonenessFor returns the target temperature for the given doneness
// level. When level is empty or not defined for this profile, it falls
// back to the profile's first (most commonly recommended) entry.
func (p ProteinProfile) DonenessFor(level string) DonenessTemp {
	if level != "" {
		for _, d := range p.Doneness {
			if d.Level == level {
				return d
			}
		}
	}
	return p.Doneness[0]
}

// DefaultMethod returns the first recommended cook method.
func (p ProteinProfile) DefaultMethod() string {
	return p.Methods[0]
}

// MethodInfo describes a cook method independent of any protein.
type MethodInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	HotFast     bool    `json:"hot_fast"`
	TempLowF    float64 `json:"temp_low_f"`
	TempHighF   float64 `json:"temp_high_f"`
	Description string  `json:"description"`
}

// DonenessInfo is display metadata for a doneness level.
type DonenessInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Base is the immutable knowledge base consumed by the engine. Create
// one with NewBase (or Builtin) and treat it as read-only afterwards.
type Base struct {
	proteins     map[string]ProteinProfile
	proteinOrder []string
	methods      map[string]MethodInfo
	methodOrder  []string
	doneness     map[string]DonenessInfo
}

// NewBase validates the supplied tables and builds a Base. Every
// profile must carry at least one doneness entry and one recommended
// method, and every referenced method must exist in the method table.
func NewBase(profiles []ProteinProfile, methods []MethodInfo, doneness []DonenessInfo) (*Base, error) {
	b := &Base{
		proteins: make(map[string]ProteinProfile, len(profiles)),
		methods:  make(map[string]MethodInfo, len(methods)),
		doneness: make(map[string]DonenessInfo, len(doneness)),
	}

	for _, m := range methods {
		if m.ID == "" {
			return nil, fmt.Errorf("knowledge: method with empty id")
		}
		if _, dup := b.methods[m.ID]; dup {
			return nil, fmt.Errorf("knowledge: duplicate method %q", m.ID)
		}
		b.methods[m.ID] = m
		b.methodOrder = append(b.methodOrder, m.ID)
	}

	for _, d := range doneness {
		b.doneness[d.ID] = d
	}

	for _, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("knowledge: profile with empty id")
		}
		if _, dup := b.proteins[p.ID]; dup {
			return nil, fmt.Errorf("knowledge: duplicate profile %q", p.ID)
		}
		if len(p.Doneness) == 0 {
			return nil, fmt.Errorf("knowledge: profile %q has no doneness entries", p.ID)
		}
		if len(p.Methods) == 0 {
			return nil, fmt.Errorf("knowledge: profile %q has no recommended methods", p.ID)
		}
		for _, m := range p.Methods {
			if _, ok := b.methods[m]; !ok {
				return nil, fmt.Errorf("knowledge: profile %q references unknown method %q", p.ID, m)
			}
		}
		for m := range p.MinutesPerPound {
			if _, ok := b.methods[m]; !ok {
				return nil, fmt.Errorf("knowledge: profile %q has minutes-per-pound for unknown method %q", p.ID, m)
			}
		}
		b.proteins[p.ID] = p
		b.proteinOrder = append(b.proteinOrder, p.ID)
	}

	return b, nil
}

// Profile looks up a protein by id.
func (b *Base) Profile(id string) (ProteinProfile, bool) {
	p, ok := b.proteins[id]
	return p, ok
}

// Profiles returns all profiles in definition order.
func (b *Base) Profiles() []ProteinProfile {
	out := make([]ProteinProfile, 0, len(b.proteinOrder))
	for _, id := range b.proteinOrder {
		out = append(out, b.proteins[id])
	}
	return out
}

// Method looks up cook-method metadata by id.
func (b *Base) Method(id string) (MethodInfo, bool) {
	m, ok := b.methods[id]
	return m, ok
}

// Methods returns all cook methods in definition order.
func (b *Base) Methods() []MethodInfo {
	out := make([]MethodInfo, 0, len(b.methodOrder))
	for _, id := range b.methodOrder {
		out = append(out, b.methods[id])
	}
	return out
}

// Doneness looks up doneness display metadata by id.
func (b *Base) Doneness(id string) (DonenessInfo, bool) {
	d, ok := b.doneness[id]
	return d, ok
}
