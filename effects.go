package main

import (
	"math"
	"math/rand"
)

const (
	ParticleLife  = 24.0 // ticks
	ParticleSpeed = 3.5
	DecoyLife     = 90.0
	HitBurstCount = 8
	RingOutBurst  = 16
	AbilityBurst  = 12
)

// Particle is a short-lived render descriptor. Gameplay-inert.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
}

// Decoy is a stationary cosmetic marker left by the decoy ability.
// It has no interaction with the AI controller.
type Decoy struct {
	X, Y float64
	Char int // character id, for rendering the right sprite
	Life float64
}

// Effects collects the ephemeral visual descriptors produced during a tick.
// It is passed explicitly into combat and ability resolution (there is no
// global effect sink) and drained by the renderer via snapshots.
type Effects struct {
	Particles []Particle
	Decoys    []Decoy
	rng       *rand.Rand
}

// NewEffects creates an effect emitter using the given random source
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Burst emits n particles radially from a point
func (fx *Effects) Burst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		angle := fx.rng.Float64() * 2 * math.Pi
		speed := ParticleSpeed * (0.4 + fx.rng.Float64()*0.6)
		fx.Particles = append(fx.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: ParticleLife * (0.5 + fx.rng.Float64()*0.5),
		})
	}
}

// SpawnDecoy places a decoy marker at a position
func (fx *Effects) SpawnDecoy(x, y float64, char int) {
	fx.Decoys = append(fx.Decoys, Decoy{X: x, Y: y, Char: char, Life: DecoyLife})
}

// Update advances particle positions and decays every descriptor,
// dropping the expired ones in place.
func (fx *Effects) Update(step float64) {
	alive := fx.Particles[:0]
	for _, p := range fx.Particles {
		p.X += p.VX * step
		p.Y += p.VY * step
		p.Life -= step
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	fx.Particles = alive

	decoys := fx.Decoys[:0]
	for _, d := range fx.Decoys {
		d.Life -= step
		if d.Life > 0 {
			decoys = append(decoys, d)
		}
	}
	fx.Decoys = decoys
}

// Clear drops all active descriptors (round restart)
func (fx *Effects) Clear() {
	fx.Particles = fx.Particles[:0]
	fx.Decoys = fx.Decoys[:0]
}
