package game

import "math/rand"

// Particle spawn ranges. Size, speed and opacity are fixed for the life of a
// particle; only its position changes.
const (
	particleSizeMin    = 2.0
	particleSizeMax    = 6.0
	particleSpeedMin   = 0.5
	particleSpeedMax   = 1.5
	particleOpacityMin = 0.3
	particleOpacityMax = 0.8
)

type Particle struct {
	X, Y    float64
	Size    float64
	Speed   float64
	Opacity float64
}

// Field owns a fixed-size pool of upward-drifting particles. Particles are
// never destroyed individually; the whole pool regenerates on Reset.
type Field struct {
	width, height float64
	rng           *rand.Rand
	particles     []Particle
}

func NewField(count int, width, height float64, rng *rand.Rand) *Field {
	f := &Field{
		width:     width,
		height:    height,
		rng:       rng,
		particles: make([]Particle, count),
	}
	f.populate()
	return f
}

func (f *Field) populate() {
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			Size:    particleSizeMin + f.rng.Float64()*(particleSizeMax-particleSizeMin),
			Speed:   particleSpeedMin + f.rng.Float64()*(particleSpeedMax-particleSpeedMin),
			Opacity: particleOpacityMin + f.rng.Float64()*(particleOpacityMax-particleOpacityMin),
		}
	}
}

// Reset discards the whole pool and regenerates it against new bounds.
// Existing positions are not interpolated.
func (f *Field) Reset(width, height float64) {
	f.width = width
	f.height = height
	f.populate()
}

// Tick advances every particle one frame. A particle that drifted past the
// top edge re-enters from the bottom at a new random x; otherwise it moves
// up by exactly its speed.
func (f *Field) Tick() {
	for i := range f.particles {
		p := &f.particles[i]
		if p.Y < 0 {
			p.Y = f.height
			p.X = f.rng.Float64() * f.width
			continue
		}
		p.Y -= p.Speed
	}
}

// Particles exposes the live pool. The slice is shared with the field and is
// invalidated by Reset.
func (f *Field) Particles() []Particle {
	return f.particles
}
