package sim

// Stats summarises the current state for display
type Stats struct {
	Particles int
	Links     int
	Ticks     uint64
	Moved     int // Particles that changed cell in the last tick
	Broken    int // Links broken in the last tick
	Species   []SpeciesStats
}

type SpeciesStats struct {
	Count     int
	Bonds     int // Sum of bond counts across the species
	Saturated int // Particles at bond capacity
}

// Stats walks the arena; call between ticks
func (e *Engine) Stats() Stats {
	s := Stats{
		Particles: len(e.particles),
		Links:     len(e.links),
		Ticks:     e.ticks,
		Moved:     e.lastMoved,
		Broken:    e.lastBroken,
		Species:   make([]SpeciesStats, e.cfg.Species()),
	}
	for i := range e.particles {
		p := &e.particles[i]
		sp := &s.Species[p.Type]
		sp.Count++
		sp.Bonds += p.BondCount()
		if p.BondCount() >= e.cfg.MaxBonds[p.Type] {
			sp.Saturated++
		}
	}
	return s
}
