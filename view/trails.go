package view

// Point is a recorded world position
type Point struct {
	X, Y float64
}

// Trails keeps the last Length positions of every particle in fixed ring
// buffers, one sample per Record call
type Trails struct {
	Length int
	buf    []Point // Particle i owns buf[i*Length : (i+1)*Length]
	count  int     // Samples recorded, saturating at Length
	head   int     // Next slot to write
}

// NewTrails sizes the buffers for n particles
func NewTrails(n, length int) *Trails {
	if length < 2 {
		length = 2
	}
	return &Trails{
		Length: length,
		buf:    make([]Point, n*length),
	}
}

// Particles returns the number of tracked particles
func (t *Trails) Particles() int {
	return len(t.buf) / t.Length
}

// Record appends one sample per particle. pos is called for each index.
func (t *Trails) Record(pos func(i int) (float64, float64)) {
	for i := 0; i < t.Particles(); i++ {
		x, y := pos(i)
		t.buf[i*t.Length+t.head] = Point{x, y}
	}
	t.head = (t.head + 1) % t.Length
	if t.count < t.Length {
		t.count++
	}
}

// Clear forgets every sample, keeping the buffers
func (t *Trails) Clear() {
	t.count = 0
	t.head = 0
}

// Each calls fn with particle i's samples from oldest to newest
func (t *Trails) Each(i int, fn func(p Point)) {
	start := t.head - t.count
	if start < 0 {
		start += t.Length
	}
	base := i * t.Length
	for k := 0; k < t.count; k++ {
		fn(t.buf[base+(start+k)%t.Length])
	}
}
