package main

import (
	"math"
	"math/rand"
)

// AbilityKind identifies a special ability. Dispatch is keyed by this tag,
// never by character identity.
type AbilityKind int

const (
	AbilityDash      AbilityKind = 0 // forward velocity impulse
	AbilityShockwave AbilityKind = 1 // radial knockback with linear falloff
	AbilityStunBlast AbilityKind = 2 // radial stun lock
	AbilityDecoy     AbilityKind = 3 // cosmetic decoy + randomized hop
)

// String returns the wire/display name of the ability
func (k AbilityKind) String() string {
	switch k {
	case AbilityDash:
		return "dash"
	case AbilityShockwave:
		return "shockwave"
	case AbilityStunBlast:
		return "stunblast"
	case AbilityDecoy:
		return "decoy"
	}
	return "unknown"
}

// AbilitySpec carries the parameters of one ability variant. Only the
// fields relevant to the kind are set.
type AbilitySpec struct {
	Kind     AbilityKind
	Cooldown float64 // ticks until the ability can fire again

	Boost float64 // dash: forward impulse per point of speed

	Radius float64 // shockwave, stun blast
	Force  float64 // shockwave: impulse at zero distance
	Lift   float64 // shockwave: fixed upward bias

	StunFor float64 // stun blast: stun timer in ticks

	HopBoost float64 // decoy: horizontal hop impulse per point of speed
}

var abilitySpecs = map[AbilityKind]AbilitySpec{
	AbilityDash:      {Kind: AbilityDash, Cooldown: 90, Boost: 3.2},
	AbilityShockwave: {Kind: AbilityShockwave, Cooldown: 150, Radius: 140, Force: 11, Lift: 5},
	AbilityStunBlast: {Kind: AbilityStunBlast, Cooldown: 180, Radius: 120, StunFor: 80},
	AbilityDecoy:     {Kind: AbilityDecoy, Cooldown: 120, HopBoost: 1.5},
}

// SpecFor returns the parameter set for an ability kind
func SpecFor(kind AbilityKind) AbilitySpec {
	return abilitySpecs[kind]
}

// InvokeAbility fires the user's ability if its cooldown has reached zero.
// Invocation is always instantaneous and immediately resets the cooldown to
// the full recharge window. Returns false when gated by cooldown or death.
// No ability affects lives.
func InvokeAbility(user *Fighter, fighters []*Fighter, fx *Effects, rng *rand.Rand) bool {
	if !user.Alive || user.AbilityCD > 0 {
		return false
	}

	spec := SpecFor(user.Profile.Ability)
	user.AbilityCD = spec.Cooldown

	switch spec.Kind {
	case AbilityDash:
		user.VX += float64(user.Facing) * user.Profile.Speed * spec.Boost
		fx.Burst(user.X-float64(user.Facing)*user.W/2, user.Y, AbilityBurst)

	case AbilityShockwave:
		for _, t := range fighters {
			if t == user || !t.Alive {
				continue
			}
			d := Distance(user.X, user.Y, t.X, t.Y)
			if d > spec.Radius {
				continue
			}
			// Outward force falls off linearly to zero at the radius edge
			force := shockwaveFalloff(spec.Force, d, spec.Radius)
			nx := float64(user.Facing)
			ny := 0.0
			if d > 1e-6 {
				nx = (t.X - user.X) / d
				ny = (t.Y - user.Y) / d
			}
			t.VX += nx * force
			t.VY += ny*force - spec.Lift
			t.FlashT = HitFlashTicks
		}
		fx.Burst(user.X, user.Y, AbilityBurst)

	case AbilityStunBlast:
		for _, t := range fighters {
			if t == user || !t.Alive {
				continue
			}
			if Distance(user.X, user.Y, t.X, t.Y) > spec.Radius {
				continue
			}
			t.StunT = spec.StunFor
			t.FlashT = HitFlashTicks
		}
		fx.Burst(user.X, user.Y, AbilityBurst)

	case AbilityDecoy:
		fx.SpawnDecoy(user.X, user.Y, user.Profile.ID)
		dir := 1.0
		if rng.Float64() < 0.5 {
			dir = -1.0
		}
		user.VX += dir * user.Profile.Speed * spec.HopBoost
		user.VY = -JumpVelocity
		fx.Burst(user.X, user.Y, AbilityBurst/2)
	}

	return true
}

// shockwaveFalloff gives the outward impulse at a given distance from the
// blast center, falling off linearly to zero at the radius edge
func shockwaveFalloff(force, dist, radius float64) float64 {
	if dist >= radius {
		return 0
	}
	return force * (1 - math.Max(dist, 0)/radius)
}
