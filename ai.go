package main

import "math/rand"

// AI behavior states
const (
	AIStateRoam   = 0
	AIStateChase  = 1
	AIStateAttack = 2
	AIStateFlee   = 3
)

const (
	DecisionBase   = 24.0 // ticks between decisions, plus jitter
	DecisionJitter = 36.0
	ShortRange     = 160.0 // closer than this picks attack over chase
	EdgeZone       = 110.0 // distance from a main-platform edge that counts as "near"

	AIJumpChance    = 0.04 // per tick while grounded, scaled by aggression
	AIAbilityChance = 0.015
	RoamNudge       = 0.5
	RoamJumpChance  = 0.006
	FleeCornerZone  = 50.0 // inside this band of an edge a fleeing AI may jump out
)

// StepAI runs one tick of the fighter's decision state machine and returns
// the attack/ability intents it raised. Entirely suppressed while the
// fighter is stunned or not alive.
func StepAI(f *Fighter, fighters []*Fighter, platforms []Platform, rng *rand.Rand, step float64) (attack, ability bool) {
	if !f.Alive || f.Stunned() {
		return false, false
	}

	main := mainPlatform(platforms)
	leftEdge := main.X
	rightEdge := main.X + main.W

	f.DecideT -= step
	if f.DecideT <= 0 {
		f.DecideT = DecisionBase + rng.Float64()*DecisionJitter
		f.TargetID = nearestOpponentID(f, fighters)

		nearEdge := f.X < leftEdge+EdgeZone || f.X > rightEdge-EdgeZone
		switch {
		case nearEdge && rng.Float64() < 0.5:
			f.AIState = AIStateFlee
		case f.TargetID >= 0 && distanceToFighter(f, fighters[f.TargetID]) < ShortRange:
			f.AIState = AIStateAttack
		case f.TargetID >= 0:
			f.AIState = AIStateChase
		default:
			f.AIState = AIStateRoam
		}
	}

	aggression := f.Profile.Strength / MaxStrength

	switch f.AIState {
	case AIStateChase, AIStateAttack:
		// Cached targets are re-validated at the point of use: a reference
		// to a fighter eliminated since the last decision is stale and
		// triggers re-selection instead of being trusted.
		t := targetOf(f, fighters)
		if t == nil || !t.Alive {
			f.TargetID = nearestOpponentID(f, fighters)
			t = targetOf(f, fighters)
		}
		if t == nil {
			break
		}

		dir := FacingLeft
		if t.X > f.X {
			dir = FacingRight
		}
		f.VX += float64(dir) * f.Profile.Speed * MoveAccel * step
		f.Facing = dir

		if Distance(f.X, f.Y, t.X, t.Y) <= AttackRange*ExtendedAttackRangeMul && f.AttackCD <= 0 {
			attack = true
		}
		if f.Grounded && rng.Float64() < AIJumpChance*aggression*step {
			f.VY = -JumpVelocity
		}
		if f.AbilityCD <= 0 && rng.Float64() < AIAbilityChance*(0.5+aggression)*step {
			ability = true
		}

	case AIStateFlee:
		// Steer away from whichever edge is nearer
		dir := FacingRight
		if f.X > (leftEdge+rightEdge)/2 {
			dir = FacingLeft
		}
		f.VX += float64(dir) * f.Profile.Speed * MoveAccel * step
		f.Facing = dir

		cornered := f.X < leftEdge+FleeCornerZone || f.X > rightEdge-FleeCornerZone
		if cornered && f.Grounded {
			f.VY = -JumpVelocity
		}

	default: // roam
		f.VX += (rng.Float64()*2 - 1) * RoamNudge * step
		if f.Grounded && rng.Float64() < RoamJumpChance*step {
			f.VY = -JumpVelocity * 0.7
		}
	}

	f.VX = Clamp(f.VX, -f.Profile.Speed, f.Profile.Speed)
	return attack, ability
}

// nearestOpponentID returns the id of the nearest living opponent, or -1
func nearestOpponentID(f *Fighter, fighters []*Fighter) int {
	best := -1
	bestD := 0.0
	for _, o := range fighters {
		if o == f || !o.Alive {
			continue
		}
		d := DistanceSq(f.X, f.Y, o.X, o.Y)
		if best < 0 || d < bestD {
			best = o.ID
			bestD = d
		}
	}
	return best
}

// targetOf resolves the cached target id to a fighter, or nil
func targetOf(f *Fighter, fighters []*Fighter) *Fighter {
	if f.TargetID < 0 || f.TargetID >= len(fighters) {
		return nil
	}
	return fighters[f.TargetID]
}

func distanceToFighter(f, o *Fighter) float64 {
	return Distance(f.X, f.Y, o.X, o.Y)
}
