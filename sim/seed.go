package sim

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Noise parameters for clustered seeding
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOct   = 3
	perlinScale = 0.004 // Noise units per pixel, roughly one patch per 250px
)

// Seed places cfg.NodeCount particles uniformly over the viewport. Species
// are uniform too, unless cfg.Seeding selects perlin, in which case the
// species follows a noise field so like particles start in patches.
func Seed(cfg *Config, width, height float64, rng *rand.Rand) []Particle {
	species := cfg.Species()
	particles := make([]Particle, cfg.NodeCount)

	var noise *perlin.Perlin
	if cfg.Seeding == SeedPerlin {
		noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, rng.Int63())
	}

	for i := range particles {
		x := rng.Float64() * width
		y := rng.Float64() * height
		var t int
		if noise != nil {
			t = noiseSpecies(noise.Noise2D(x*perlinScale, y*perlinScale), species)
		} else {
			t = rng.Intn(species)
		}
		particles[i] = Particle{Type: t, X: x, Y: y}
	}
	return particles
}

// noiseSpecies maps a noise sample, roughly in [-1, 1], to a species index
func noiseSpecies(v float64, species int) int {
	t := int((v + 1) / 2 * float64(species))
	return clampInt(t, 0, species-1)
}
