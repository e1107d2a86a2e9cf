package main

// Physics tuning. Velocities are in pixels per tick at the reference rate;
// each tick scales them by the normalized timestep.
const (
	Gravity      = 0.55 // pixels/tick² downward
	MaxFallSpeed = 13.0
	Friction     = 0.85 // horizontal velocity multiplier per tick
	JumpVelocity = 11.5
	MoveAccel    = 0.35 // fraction of character speed added per tick of steering
	WallBounce   = 0.5  // horizontal velocity reflection factor at arena edges

	LandingTolerance = 6.0 // vertical band around a platform top that still counts as landing
	PlatformInset    = 4.0 // horizontal margin that rejects edge-sliver landings
)

// StepPhysics integrates one fighter for one tick and resolves platform
// landings and arena side walls. Grounded is never sticky: it is cleared
// here every tick and re-established only by a landing.
func StepPhysics(f *Fighter, platforms []Platform, step float64) {
	f.Grounded = false
	if !f.Alive {
		return
	}

	f.VY += Gravity * step
	if f.VY > MaxFallSpeed {
		f.VY = MaxFallSpeed
	}
	f.VX *= Friction

	prevBottom := f.Y + f.H/2
	f.X += f.VX * step
	f.Y += f.VY * step

	// Landing: only while falling or resting, and only when the swept
	// bottom edge crossed a platform top this tick. First match in
	// iteration order wins.
	if f.VY >= 0 {
		bottom := f.Y + f.H/2
		for i := range platforms {
			p := &platforms[i]
			if prevBottom > p.Y+LandingTolerance || bottom < p.Y {
				continue
			}
			if f.X+f.W/2 <= p.X+PlatformInset || f.X-f.W/2 >= p.X+p.W-PlatformInset {
				continue
			}
			f.Y = p.Y - f.H/2
			f.VY = 0
			f.Grounded = true
			break
		}
	}

	// Soft elastic side walls. No ceiling.
	if f.X-f.W/2 < 0 {
		f.X = f.W / 2
		f.VX = -f.VX * WallBounce
	} else if f.X+f.W/2 > ArenaWidth {
		f.X = ArenaWidth - f.W/2
		f.VX = -f.VX * WallBounce
	}
}

// FellOut reports whether the fighter has dropped past the ring-out line
func FellOut(f *Fighter) bool {
	return f.Y > ArenaHeight+FallMargin
}
