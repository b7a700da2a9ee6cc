package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Seeding strategies for initial placement
const (
	SeedUniform = "uniform"
	SeedPerlin  = "perlin"
)

// RGB is a display color, consumed only by the renderer
type RGB [3]uint8

// Config holds every tunable of the simulation. It is fixed once the
// engine is built.
type Config struct {
	MaxDist       float64 `json:"max_dist"`       // Interaction cutoff and grid cell side
	NodeRadius    float64 `json:"node_radius"`    // Drawn radius, also defines the hard core
	NodeCount     int     `json:"node_count"`     // Particles seeded by New
	Speed         float64 `json:"speed"`          // Impulse scalar
	PlaybackSpeed int     `json:"playback_speed"` // Ticks per displayed frame
	Border        float64 `json:"border"`         // Repulsion margin along each edge
	BorderAccel   float64 `json:"border_accel"`   // Inward acceleration factor inside the margin
	LinkForce     float64 `json:"link_force"`     // Spring coefficient for stretched bonds
	Damping       float64 `json:"damping"`        // Velocity decay per tick
	MaxSpeed      float64 `json:"max_speed"`      // Velocity magnitude cap

	Coupling     [][]float64 `json:"coupling"`      // [self][other], not symmetric
	MaxBonds     []int       `json:"max_bonds"`     // Bond capacity per species
	BondingLimit [][]int     `json:"bonding_limit"` // Max bonds from [self] to species [other]

	Palette    []RGB  `json:"palette"`
	Background RGB    `json:"background"`
	LinkColor  RGB    `json:"link_color"`
	Seeding    string `json:"seeding"`
}

// DefaultConfig returns the three-species setup
func DefaultConfig() Config {
	return Config{
		MaxDist:       100,
		NodeRadius:    5,
		NodeCount:     1000,
		Speed:         4,
		PlaybackSpeed: 3,
		Border:        30,
		BorderAccel:   0.05,
		LinkForce:     -0.015,
		Damping:       0.98,
		MaxSpeed:      1,
		Coupling: [][]float64{
			{1, 1, -1},
			{1, 1, 1},
			{1, 1, 1},
		},
		MaxBonds: []int{1, 3, 2},
		BondingLimit: [][]int{
			{0, 1, 1},
			{1, 2, 1},
			{1, 1, 2},
		},
		Palette: []RGB{
			{250, 20, 20},
			{200, 140, 100},
			{80, 170, 140},
		},
		Background: RGB{20, 55, 75},
		LinkColor:  RGB{255, 230, 0},
		Seeding:    SeedUniform,
	}
}

// Species returns the number of particle kinds
func (c *Config) Species() int {
	return len(c.Coupling)
}

// Clone returns a copy that shares no tables with c
func (c *Config) Clone() Config {
	out := *c
	out.Coupling = make([][]float64, len(c.Coupling))
	for i, row := range c.Coupling {
		out.Coupling[i] = append([]float64(nil), row...)
	}
	out.MaxBonds = append([]int(nil), c.MaxBonds...)
	out.BondingLimit = make([][]int, len(c.BondingLimit))
	for i, row := range c.BondingLimit {
		out.BondingLimit[i] = append([]int(nil), row...)
	}
	out.Palette = append([]RGB(nil), c.Palette...)
	return out
}

// Validate checks scalar ranges and that every table is square in the
// species count.
func (c *Config) Validate() error {
	positives := []struct {
		name string
		v    float64
	}{
		{"max_dist", c.MaxDist},
		{"node_radius", c.NodeRadius},
		{"speed", c.Speed},
		{"damping", c.Damping},
		{"max_speed", c.MaxSpeed},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return fmt.Errorf("%s: %w", p.name, ErrNonPositive)
		}
	}
	if c.PlaybackSpeed <= 0 {
		return fmt.Errorf("playback_speed: %w", ErrNonPositive)
	}
	if c.NodeCount < 0 {
		return fmt.Errorf("node_count: %w", ErrNegative)
	}
	if c.Border < 0 {
		return fmt.Errorf("border: %w", ErrNegative)
	}

	n := c.Species()
	if n == 0 {
		return fmt.Errorf("coupling: %w", ErrEmptyTable)
	}
	for i, row := range c.Coupling {
		if len(row) != n {
			return fmt.Errorf("coupling row %d: %w", i, ErrTableShape)
		}
	}
	if len(c.MaxBonds) != n {
		return fmt.Errorf("max_bonds: %w", ErrTableShape)
	}
	for i, m := range c.MaxBonds {
		if m < 0 {
			return fmt.Errorf("max_bonds[%d]: %w", i, ErrNegative)
		}
	}
	if len(c.BondingLimit) != n {
		return fmt.Errorf("bonding_limit: %w", ErrTableShape)
	}
	for i, row := range c.BondingLimit {
		if len(row) != n {
			return fmt.Errorf("bonding_limit row %d: %w", i, ErrTableShape)
		}
	}
	if len(c.Palette) != 0 && len(c.Palette) != n {
		return fmt.Errorf("palette: %w", ErrTableShape)
	}

	switch c.Seeding {
	case "", SeedUniform, SeedPerlin:
	default:
		return fmt.Errorf("seeding %q: %w", c.Seeding, ErrUnknownSeed)
	}
	return nil
}

// LoadConfig reads a JSON file on top of the defaults, so a file only
// needs the fields it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
