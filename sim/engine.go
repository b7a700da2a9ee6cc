// Package sim is the molecule simulation engine: typed particles on a
// bounded plane, pairwise species forces, and a capacity-limited bond graph
// kept cheap by a uniform grid whose cell side is the interaction cutoff.
//
// An Engine is not safe for concurrent use. Readers must not touch the
// slices returned by Particles and Links while Tick or Resize runs.
package sim

import (
	"fmt"
	"math/rand"
)

// Engine owns the particle arena, the grid and the active links
type Engine struct {
	cfg           Config
	width, height float64

	particles []Particle
	links     []Link
	grid      *Grid
	ticks     uint64

	// Bookkeeping from the last tick
	lastMoved  int
	lastBroken int

	// Squared thresholds derived from cfg
	maxDist2  float64
	bondDist2 float64
	coreDist2 float64
}

// New seeds cfg.NodeCount particles over width x height using rng
func New(cfg Config, width, height float64, rng *rand.Rand) (*Engine, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%.0fx%.0f: %w", width, height, ErrBadViewport)
	}
	particles := Seed(&cfg, width, height, rng)
	return build(cfg, width, height, particles), nil
}

// NewWithParticles builds an engine around an explicit population. Bonds
// already present on the particles become links; they must be symmetric
// and within capacity, with each partner listed once.
func NewWithParticles(cfg Config, width, height float64, particles []Particle) (*Engine, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%.0fx%.0f: %w", width, height, ErrBadViewport)
	}

	own := make([]Particle, len(particles))
	for i, p := range particles {
		if p.Type < 0 || p.Type >= cfg.Species() {
			return nil, fmt.Errorf("particle %d species %d: %w", i, p.Type, ErrBadParticle)
		}
		if len(p.Bonds) > cfg.MaxBonds[p.Type] {
			return nil, fmt.Errorf("particle %d over bond capacity: %w", i, ErrBadParticle)
		}
		for k, b := range p.Bonds {
			if b < 0 || b >= len(particles) || b == i {
				return nil, fmt.Errorf("particle %d bond %d: %w", i, b, ErrUnknownIndex)
			}
			for _, prev := range p.Bonds[:k] {
				if prev == b {
					return nil, fmt.Errorf("particle %d bond %d listed twice: %w", i, b, ErrBadParticle)
				}
			}
			if !particles[b].BondedTo(i) {
				return nil, fmt.Errorf("particle %d bond %d not mutual: %w", i, b, ErrBadParticle)
			}
		}
		own[i] = p
		own[i].Bonds = append([]int(nil), p.Bonds...)
	}

	e := build(cfg, width, height, own)
	for i, p := range own {
		for _, b := range p.Bonds {
			if i < b {
				e.links = append(e.links, Link{A: i, B: b})
			}
		}
	}
	return e, nil
}

// build takes ownership of cfg and particles
func build(cfg Config, width, height float64, particles []Particle) *Engine {
	e := &Engine{
		cfg:       cfg,
		width:     width,
		height:    height,
		particles: particles,
		maxDist2:  cfg.MaxDist * cfg.MaxDist,
		bondDist2: cfg.MaxDist * cfg.MaxDist / 4,
		coreDist2: 4 * cfg.NodeRadius * cfg.NodeRadius,
	}
	e.grid = NewGrid(width, height, cfg.MaxDist)
	e.grid.Insert(e.particles)
	return e
}

// Tick advances the simulation by one step: move, relax bonds, re-bucket,
// then pairwise forces over the grid
func (e *Engine) Tick() {
	e.integrate()
	e.lastBroken = e.relaxLinks()
	e.lastMoved = e.grid.Rebucket(e.particles)
	e.grid.ForEachPair(e.interact)
	e.ticks++
}

// Resize rebuilds the grid for a new viewport. Particles outside the new
// bounds stay where they are and are pushed back by the border.
func (e *Engine) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%.0fx%.0f: %w", width, height, ErrBadViewport)
	}
	if width == e.width && height == e.height {
		return nil
	}
	e.width, e.height = width, height
	e.grid = NewGrid(width, height, e.cfg.MaxDist)
	e.grid.Insert(e.particles)
	return nil
}

// Particles returns the arena. Read only, and only between ticks.
func (e *Engine) Particles() []Particle { return e.particles }

// Links returns the active bonds. Read only, and only between ticks.
func (e *Engine) Links() []Link { return e.links }

// Width returns the viewport width
func (e *Engine) Width() float64 { return e.width }

// Height returns the viewport height
func (e *Engine) Height() float64 { return e.height }

// Config returns a copy of the configuration the engine runs with
func (e *Engine) Config() Config { return e.cfg.Clone() }

// Ticks returns the number of completed ticks
func (e *Engine) Ticks() uint64 { return e.ticks }

// GridSize returns the grid dimensions in cells
func (e *Engine) GridSize() (cols, rows int) {
	return e.grid.Cols, e.grid.Rows
}

// CellMembers returns the particles filed in cell (i, j), nil when out of
// bounds. Read only, and only between ticks.
func (e *Engine) CellMembers(i, j int) []int {
	return e.grid.At(i, j)
}

// CellAt returns the grid cell covering world position (x, y), clamped to
// the grid
func (e *Engine) CellAt(x, y float64) (i, j int) {
	return e.grid.CellOf(x, y)
}
