package engine

// ResolveTarget turns a protein id and optional doneness level into
// concrete target and pull temperatures. An empty or undefined
// doneness falls back to the profile's first entry, which the
// knowledge base orders as the most commonly recommended one.
//
// The pull temperature is the target minus the profile's expected
// carryover rise, so food pulled there coasts to the target while
// resting.
func (e *Engine) ResolveTarget(proteinID, doneness string) (TargetResult, error) {
	p, err := e.profile(proteinID)
	if err != nil {
		return TargetResult{}, err
	}

	d := p.DonenessFor(doneness)

	return TargetResult{
		ProteinID:  p.ID,
		Doneness:   d.Level,
		TargetTemp: d.TempF,
		PullTemp:   d.TempF - p.CarryoverDegrees,
		SafeTemp:   p.SafeTempF,
	}, nil
}
