package sim

import "math"

// interact applies the pairwise force between particles ia and ib and
// forms a bond between them when both have room for it. A positive
// coefficient pushes the pair apart.
//
// The first eligible partner in traversal order gets the bond, not the
// nearest one.
func (e *Engine) interact(ia, ib int) {
	if ia == ib {
		return
	}
	a := &e.particles[ia]
	b := &e.particles[ib]
	cfg := &e.cfg

	d2 := dist2(a, b)
	if d2 > e.maxDist2 {
		return
	}
	angle := math.Atan2(a.Y-b.Y, a.X-b.X)
	if d2 < 1 {
		d2 = 1
	}

	dA := cfg.Coupling[a.Type][b.Type] / d2
	dB := cfg.Coupling[b.Type][a.Type] / d2

	bonded := a.BondedTo(ib)
	if a.BondCount() < cfg.MaxBonds[a.Type] && b.BondCount() < cfg.MaxBonds[b.Type] {
		if d2 < e.bondDist2 && !bonded {
			e.tryBond(ia, ib)
		}
	} else if !bonded {
		dA = 1 / d2
		dB = 1 / d2
	}

	if d2 < e.coreDist2 {
		dA = 1 / d2
		dB = 1 / d2
	}

	cos, sin := math.Cos(angle), math.Sin(angle)
	a.SX += cos * dA * cfg.Speed
	a.SY += sin * dA * cfg.Speed
	b.SX -= cos * dB * cfg.Speed
	b.SY -= sin * dB * cfg.Speed
}

// tryBond bonds ia and ib if neither already holds its species-pair quota
// of bonds to the other's species
func (e *Engine) tryBond(ia, ib int) bool {
	a := &e.particles[ia]
	b := &e.particles[ib]

	if e.bondsToSpecies(a, b.Type) >= e.cfg.BondingLimit[a.Type][b.Type] {
		return false
	}
	if e.bondsToSpecies(b, a.Type) >= e.cfg.BondingLimit[b.Type][a.Type] {
		return false
	}
	e.links = append(e.links, bond(e.particles, ia, ib))
	return true
}

func (e *Engine) bondsToSpecies(p *Particle, species int) int {
	n := 0
	for _, idx := range p.Bonds {
		if e.particles[idx].Type == species {
			n++
		}
	}
	return n
}
