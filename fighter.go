package main

import "math"

// Facing values. Stored as ±1 so impulse math can multiply by it directly.
const (
	FacingLeft  = -1
	FacingRight = 1
)

// Control slots. Slot 0 is the AI; slots 1-3 are human input slots.
const (
	ControlAI = 0
)

const (
	FighterWidth  = 36.0
	FighterHeight = 48.0
)

// Fighter is one combatant in the arena. All status timers are measured in
// ticks at the reference rate and decay by the normalized timestep, so
// durations are independent of display refresh rate.
type Fighter struct {
	ID      int
	Name    string
	Profile *Character
	Slot    int // 0 = AI-controlled, 1-3 = human input slot

	X, Y     float64 // center
	VX, VY   float64
	W, H     float64
	Facing   int
	Grounded bool

	Lives int
	Alive bool

	// Status timers, non-negative, monotonically decreasing
	StunT     float64
	AttackCD  float64
	AbilityCD float64
	FlashT    float64

	// AI scratch state
	AIState  int
	DecideT  float64
	TargetID int // cached target fighter id, -1 = none

	// Starting layout, restored on round restart
	SpawnX      float64
	SpawnY      float64
	SpawnFacing int
}

// NewFighter creates a fighter at its spawn position
func NewFighter(id int, name string, profile *Character, slot int, x, y float64, facing int) *Fighter {
	return &Fighter{
		ID:          id,
		Name:        name,
		Profile:     profile,
		Slot:        slot,
		X:           x,
		Y:           y,
		W:           FighterWidth,
		H:           FighterHeight,
		Facing:      facing,
		Lives:       StartingLives,
		Alive:       true,
		AIState:     AIStateRoam,
		TargetID:    -1,
		SpawnX:      x,
		SpawnY:      y,
		SpawnFacing: facing,
	}
}

// IsAI reports whether the fighter is AI-controlled
func (f *Fighter) IsAI() bool {
	return f.Slot == ControlAI
}

// Stunned reports whether the fighter is currently stun-locked. While true,
// both AI decisions and human input application are suppressed; physics
// integration continues normally.
func (f *Fighter) Stunned() bool {
	return f.StunT > 0
}

// TickTimers decays all status timers by the normalized timestep,
// flooring each at zero.
func (f *Fighter) TickTimers(step float64) {
	if f.StunT > 0 {
		f.StunT -= step
		if f.StunT < 0 {
			f.StunT = 0
		}
	}
	if f.AttackCD > 0 {
		f.AttackCD -= step
		if f.AttackCD < 0 {
			f.AttackCD = 0
		}
	}
	if f.AbilityCD > 0 {
		f.AbilityCD -= step
		if f.AbilityCD < 0 {
			f.AbilityCD = 0
		}
	}
	if f.FlashT > 0 {
		f.FlashT -= step
		if f.FlashT < 0 {
			f.FlashT = 0
		}
	}
}

// ResetForRound restores the starting layout and per-round transient state.
// Lives persist across rounds; only alive state, timers, kinematics and AI
// scratch are fresh.
func (f *Fighter) ResetForRound() {
	f.X = f.SpawnX
	f.Y = f.SpawnY
	f.VX = 0
	f.VY = 0
	f.Facing = f.SpawnFacing
	f.Grounded = false
	f.Alive = true
	f.StunT = 0
	f.AttackCD = 0
	f.AbilityCD = 0
	f.FlashT = 0
	f.AIState = AIStateRoam
	f.DecideT = 0
	f.TargetID = -1
}

// ApplyInput steers the fighter from one tick's human action flags and
// returns the attack/ability intents raised this tick. No-op while dead or
// stunned: a stunned fighter's velocity is unaffected by input even though
// physics keeps integrating it.
func (f *Fighter) ApplyInput(in InputFrame, step float64) (attack, ability bool) {
	if !f.Alive || f.Stunned() {
		return false, false
	}

	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	if dir != 0 {
		// Steering tops out at the speed stat but never trims a larger
		// velocity already present (knockback, dash); that decays through
		// friction like any other impulse.
		limit := f.Profile.Speed
		if v := math.Abs(f.VX); v > limit {
			limit = v
		}
		f.VX = Clamp(f.VX+float64(dir)*f.Profile.Speed*MoveAccel*step, -limit, limit)
		f.Facing = dir
	}

	if in.Jump && f.Grounded {
		f.VY = -JumpVelocity
	}

	return in.Attack, in.Ability
}

// ToState converts to protocol state
func (f *Fighter) ToState() FighterState {
	return FighterState{
		ID:        f.ID,
		Name:      f.Name,
		Char:      f.Profile.ID,
		Slot:      f.Slot,
		X:         round1(f.X),
		Y:         round1(f.Y),
		VX:        round1(f.VX),
		VY:        round1(f.VY),
		Facing:    f.Facing,
		Grounded:  f.Grounded,
		Alive:     f.Alive,
		Lives:     f.Lives,
		Stun:      round1(f.StunT),
		AttackCD:  round1(f.AttackCD),
		AbilityCD: round1(f.AbilityCD),
		Flash:     round1(f.FlashT),
	}
}
