package main

import (
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestResolveAttackHits(t *testing.T) {
	attacker := testFighter(0, 1, 400, 480) // Boulder, strength 9
	attacker.Facing = FacingRight
	target := testFighter(1, 0, 460, 480)
	fighters := []*Fighter{attacker, target}
	fx := NewEffects(testRNG())

	hits := ResolveAttack(attacker, fighters, fx, testRNG())
	if hits != 1 {
		t.Fatalf("expected 1 hit, got %d", hits)
	}
	want := attacker.Profile.Strength * KnockbackScale
	if target.VX != want {
		t.Errorf("expected knockback VX %f, got %f", want, target.VX)
	}
	if target.VY != -KnockbackLift {
		t.Errorf("expected lift VY %f, got %f", -KnockbackLift, target.VY)
	}
	if target.FlashT != HitFlashTicks {
		t.Errorf("expected hit flash %f, got %f", HitFlashTicks, target.FlashT)
	}
	if len(fx.Particles) == 0 {
		t.Error("hit should emit particles")
	}
}

func TestResolveAttackKnockbackDirection(t *testing.T) {
	// Target slightly left of the attacker but still inside the forward
	// swing is pushed left even though the attacker faces right.
	attacker := testFighter(0, 1, 400, 480)
	attacker.Facing = FacingRight
	target := testFighter(1, 0, 395, 480)
	fighters := []*Fighter{attacker, target}
	fx := NewEffects(testRNG())

	ResolveAttack(attacker, fighters, fx, testRNG())
	if target.VX >= 0 {
		t.Errorf("target left of attacker should be pushed left, VX = %f", target.VX)
	}
}

func TestResolveAttackOutOfRange(t *testing.T) {
	attacker := testFighter(0, 0, 100, 480)
	target := testFighter(1, 1, 400, 480)
	fighters := []*Fighter{attacker, target}
	fx := NewEffects(testRNG())

	hits := ResolveAttack(attacker, fighters, fx, testRNG())
	if hits != 0 {
		t.Errorf("expected miss, got %d hits", hits)
	}
	if target.VX != 0 {
		t.Error("missed target should not move")
	}
	if attacker.AttackCD <= 0 {
		t.Error("a whiffed attack still starts the cooldown")
	}
}

func TestResolveAttackBehindAttacker(t *testing.T) {
	// Target within raw distance but behind the forward attack point
	attacker := testFighter(0, 0, 400, 480)
	attacker.Facing = FacingRight
	target := testFighter(1, 1, 310, 480) // 90 behind, 160 from attack point
	fighters := []*Fighter{attacker, target}
	fx := NewEffects(testRNG())

	hits := ResolveAttack(attacker, fighters, fx, testRNG())
	if hits != 0 {
		t.Errorf("target behind the attacker should be missed, got %d hits", hits)
	}
}

func TestResolveAttackCooldownGate(t *testing.T) {
	attacker := testFighter(0, 0, 400, 480)
	attacker.AttackCD = 5
	target := testFighter(1, 1, 460, 480)
	fighters := []*Fighter{attacker, target}
	fx := NewEffects(testRNG())

	hits := ResolveAttack(attacker, fighters, fx, testRNG())
	if hits != 0 {
		t.Error("attack during cooldown must be a complete no-op")
	}
	if target.VX != 0 || target.FlashT != 0 {
		t.Error("gated attack must not touch the target")
	}
	if attacker.AttackCD != 5 {
		t.Error("gated attack must not reset the cooldown")
	}
}

func TestResolveAttackDeadSkipped(t *testing.T) {
	attacker := testFighter(0, 0, 400, 480)
	dead := testFighter(1, 1, 460, 480)
	dead.Alive = false
	fighters := []*Fighter{attacker, dead}
	fx := NewEffects(testRNG())

	hits := ResolveAttack(attacker, fighters, fx, testRNG())
	if hits != 0 {
		t.Error("dead fighters cannot be hit")
	}

	attacker.Alive = false
	attacker.AttackCD = 0
	live := testFighter(2, 2, 460, 480)
	hits = ResolveAttack(attacker, []*Fighter{attacker, live}, fx, testRNG())
	if hits != 0 {
		t.Error("dead attacker cannot attack")
	}
}

func TestResolveAttackNeverTouchesLives(t *testing.T) {
	attacker := testFighter(0, 1, 400, 480)
	target := testFighter(1, 0, 460, 480)
	fighters := []*Fighter{attacker, target}
	fx := NewEffects(testRNG())

	ResolveAttack(attacker, fighters, fx, testRNG())
	if target.Lives != StartingLives {
		t.Errorf("melee must not change lives, got %d", target.Lives)
	}
	if !target.Alive {
		t.Error("melee must not kill directly")
	}
}

func TestAIAttackCooldownJitter(t *testing.T) {
	ai := NewFighter(0, "cpu", CharacterByID(0), ControlAI, 400, 480, FacingRight)
	human := testFighter(1, 1, 460, 480)
	fx := NewEffects(testRNG())

	ResolveAttack(ai, []*Fighter{ai, human}, fx, testRNG())
	if ai.AttackCD < AttackCooldown {
		t.Errorf("AI cooldown %f should be at least the base %f", ai.AttackCD, AttackCooldown)
	}
	if ai.AttackCD > AttackCooldown+AttackCooldownJitter {
		t.Errorf("AI cooldown %f exceeds base plus jitter", ai.AttackCD)
	}

	human2 := testFighter(2, 2, 400, 480)
	target := testFighter(3, 3, 460, 480)
	ResolveAttack(human2, []*Fighter{human2, target}, fx, testRNG())
	if human2.AttackCD != AttackCooldown {
		t.Errorf("human cooldown should be exactly %f, got %f", AttackCooldown, human2.AttackCD)
	}
}
