package main

import "math/rand"

const (
	AttackRange            = 70.0
	AttackTolerance        = 10.0 // extra reach forgiveness on the hit test
	AttackCooldown         = 28.0 // ticks of recovery after an attack
	AttackCooldownJitter   = 10.0 // extra random recovery for AI attackers
	KnockbackScale         = 1.6  // horizontal impulse per point of strength
	KnockbackLift          = 6.0  // fixed upward velocity bias on every hit
	HitFlashTicks          = 10.0
	ExtendedAttackRangeMul = 1.25 // AI fires intents slightly outside true reach
)

// ResolveAttack resolves one melee attack intent and returns the number of
// fighters hit. An intent from a fighter whose attack cooldown has not
// reached zero produces no state change at all.
//
// Knockback direction depends only on relative horizontal centers at
// resolution time: a target right of the attacker is always pushed right,
// regardless of the attacker's facing. Melee never reduces lives; only
// ring-outs do.
func ResolveAttack(attacker *Fighter, fighters []*Fighter, fx *Effects, rng *rand.Rand) int {
	if !attacker.Alive || attacker.AttackCD > 0 {
		return 0
	}

	cd := AttackCooldown
	if attacker.IsAI() {
		cd += rng.Float64() * AttackCooldownJitter
	}
	attacker.AttackCD = cd

	// Forward-offset attack point in the facing direction
	px := attacker.X + float64(attacker.Facing)*AttackRange
	py := attacker.Y

	hits := 0
	for _, t := range fighters {
		if t == attacker || !t.Alive {
			continue
		}
		if Distance(px, py, t.X, t.Y) > AttackRange+AttackTolerance {
			continue
		}

		dir := -1.0
		if t.X > attacker.X {
			dir = 1.0
		}
		t.VX = dir * attacker.Profile.Strength * KnockbackScale
		t.VY -= KnockbackLift
		t.FlashT = HitFlashTicks
		fx.Burst(t.X, t.Y, HitBurstCount)
		hits++
	}
	return hits
}
