package sim

import "math"

// integrate advances positions, applies drag, the speed cap and border
// repulsion to every particle
func (e *Engine) integrate() {
	cfg := &e.cfg
	push := cfg.Speed * cfg.BorderAccel
	for i := range e.particles {
		p := &e.particles[i]
		p.X += p.SX
		p.Y += p.SY
		p.SX *= cfg.Damping
		p.SY *= cfg.Damping

		// Speed cap, not energy conserving
		if mag := math.Hypot(p.SX, p.SY); mag > cfg.MaxSpeed {
			p.SX = p.SX / mag * cfg.MaxSpeed
			p.SY = p.SY / mag * cfg.MaxSpeed
		}

		p.X, p.SX = repelBorder(p.X, p.SX, e.width, cfg.Border, push)
		p.Y, p.SY = repelBorder(p.Y, p.SY, e.height, cfg.Border, push)
	}
}

// repelBorder handles one axis: inward acceleration inside the margin,
// reflection with a damped bounce past the edge
func repelBorder(pos, vel, limit, border, push float64) (float64, float64) {
	if pos < border {
		vel += push
		if pos < 0 {
			pos = -pos
			vel *= -0.5
		}
	} else if pos > limit-border {
		vel -= push
		if pos > limit {
			pos = 2*limit - pos
			vel *= -0.5
		}
	}
	return pos, vel
}

// relaxLinks breaks links stretched past half the cutoff and pulls the
// remaining stretched ones together. Surviving links keep their order.
func (e *Engine) relaxLinks() (broken int) {
	pull := e.cfg.LinkForce * e.cfg.Speed
	kept := e.links[:0]
	for _, l := range e.links {
		a := &e.particles[l.A]
		b := &e.particles[l.B]
		d2 := dist2(a, b)
		if d2 > e.bondDist2 {
			unbond(e.particles, l)
			broken++
			continue
		}
		if d2 > e.coreDist2 {
			angle := math.Atan2(a.Y-b.Y, a.X-b.X)
			fx := math.Cos(angle) * pull
			fy := math.Sin(angle) * pull
			a.SX += fx
			a.SY += fy
			b.SX -= fx
			b.SY -= fy
		}
		kept = append(kept, l)
	}
	e.links = kept
	return broken
}
