// Package confetti generates the falling particles shown behind the results
// card and composes them into terminal frames.
package confetti

import (
	"math/rand/v2"
	"time"
)

// Count is the number of particles generated per results view.
const Count = 50

// Glyphs are the particle shapes.
var Glyphs = []string{"🎉", "💕", "✨", "🌹", "💑", "💖"}

// Particle is one piece of confetti.
type Particle struct {
	ID int
	// Left is the horizontal start position as a percentage of the width, in [0, 100).
	Left float64
	// Delay is the start delay in seconds, in [0, 0.5).
	Delay float64
	// Duration is the fall time in seconds, in [2, 3).
	Duration float64
	Glyph    string
}

// Generate returns Count particles with independently randomized
// position, delay and duration.
func Generate(rng *rand.Rand) []Particle {
	ps := make([]Particle, Count)
	for i := range ps {
		ps[i] = Particle{
			ID:       i,
			Left:     rng.Float64() * 100,
			Delay:    rng.Float64() * 0.5,
			Duration: 2 + rng.Float64(),
			Glyph:    Glyphs[rng.IntN(len(Glyphs))],
		}
	}
	return ps
}

// Progress returns how far the particle has fallen at elapsed, in [0, 1).
// ok is false before the particle starts and after it lands.
func (p Particle) Progress(elapsed time.Duration) (progress float64, ok bool) {
	t := elapsed.Seconds() - p.Delay
	if t < 0 || t >= p.Duration {
		return 0, false
	}
	return t / p.Duration, true
}

// Landed reports whether every particle has finished falling.
func Landed(ps []Particle, elapsed time.Duration) bool {
	s := elapsed.Seconds()
	for _, p := range ps {
		if s < p.Delay+p.Duration {
			return false
		}
	}
	return true
}
