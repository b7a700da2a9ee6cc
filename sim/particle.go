package sim

// Particle is a typed point mass. Bonds holds arena indices of bonded
// partners; the bond count is len(Bonds).
type Particle struct {
	Type   int
	X, Y   float64
	SX, SY float64
	Bonds  []int

	cell int // Grid cell index the particle is currently filed under
}

// Link is an active bond between two particles, by arena index
type Link struct {
	A, B int
}

// BondCount returns the number of active bonds
func (p *Particle) BondCount() int {
	return len(p.Bonds)
}

// BondedTo reports whether idx is in the bond list
func (p *Particle) BondedTo(idx int) bool {
	for _, b := range p.Bonds {
		if b == idx {
			return true
		}
	}
	return false
}

// Cell returns the grid cell derived from the current position, unclamped
func (p *Particle) Cell(cellSize float64) (fx, fy int) {
	return floorDiv(p.X, cellSize), floorDiv(p.Y, cellSize)
}

// dist2 is the squared distance between a and b
func dist2(a, b *Particle) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// removeBond drops idx from the bond list keeping order
func (p *Particle) removeBond(idx int) {
	for i, b := range p.Bonds {
		if b == idx {
			p.Bonds = append(p.Bonds[:i], p.Bonds[i+1:]...)
			return
		}
	}
}

// bond links the particles at ia and ib in both directions
func bond(particles []Particle, ia, ib int) Link {
	particles[ia].Bonds = append(particles[ia].Bonds, ib)
	particles[ib].Bonds = append(particles[ib].Bonds, ia)
	return Link{A: ia, B: ib}
}

// unbond reverses bond
func unbond(particles []Particle, l Link) {
	particles[l.A].removeBond(l.B)
	particles[l.B].removeBond(l.A)
}
