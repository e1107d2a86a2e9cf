package main

import "testing"

func TestDashImpulse(t *testing.T) {
	blaze := testFighter(0, 0, 400, 480) // dash
	blaze.Facing = FacingRight
	fx := NewEffects(testRNG())

	if !InvokeAbility(blaze, []*Fighter{blaze}, fx, testRNG()) {
		t.Fatal("ability off cooldown should fire")
	}
	spec := SpecFor(AbilityDash)
	want := blaze.Profile.Speed * spec.Boost
	if blaze.VX != want {
		t.Errorf("expected dash VX %f, got %f", want, blaze.VX)
	}
	if blaze.AbilityCD != spec.Cooldown {
		t.Errorf("expected cooldown %f, got %f", spec.Cooldown, blaze.AbilityCD)
	}
}

func TestDashFollowsFacing(t *testing.T) {
	blaze := testFighter(0, 0, 400, 480)
	blaze.Facing = FacingLeft
	fx := NewEffects(testRNG())

	InvokeAbility(blaze, []*Fighter{blaze}, fx, testRNG())
	if blaze.VX >= 0 {
		t.Errorf("left-facing dash should go left, VX = %f", blaze.VX)
	}
}

func TestShockwaveFalloff(t *testing.T) {
	if got := shockwaveFalloff(10, 0, 100); got != 10 {
		t.Errorf("force at center should be full, got %f", got)
	}
	if got := shockwaveFalloff(10, 50, 100); got != 5 {
		t.Errorf("force at half radius should halve, got %f", got)
	}
	if got := shockwaveFalloff(10, 100, 100); got != 0 {
		t.Errorf("force at the edge should be zero, got %f", got)
	}
	if got := shockwaveFalloff(10, 150, 100); got != 0 {
		t.Errorf("force past the edge should be zero, got %f", got)
	}
}

func TestShockwavePushesOutward(t *testing.T) {
	boulder := testFighter(0, 1, 400, 480) // shockwave
	left := testFighter(1, 0, 340, 480)
	right := testFighter(2, 2, 460, 480)
	outside := testFighter(3, 3, 800, 480)
	fighters := []*Fighter{boulder, left, right, outside}
	fx := NewEffects(testRNG())

	InvokeAbility(boulder, fighters, fx, testRNG())
	if left.VX >= 0 {
		t.Errorf("target left of blast should be pushed left, VX = %f", left.VX)
	}
	if right.VX <= 0 {
		t.Errorf("target right of blast should be pushed right, VX = %f", right.VX)
	}
	if outside.VX != 0 || outside.VY != 0 {
		t.Error("target outside the radius must be unaffected")
	}
	if left.VY >= 0 {
		t.Errorf("blast should lift targets, VY = %f", left.VY)
	}
}

func TestShockwaveCloserIsStronger(t *testing.T) {
	boulder := testFighter(0, 1, 400, 480)
	near := testFighter(1, 0, 440, 480)
	far := testFighter(2, 2, 530, 480)
	fighters := []*Fighter{boulder, near, far}
	fx := NewEffects(testRNG())

	InvokeAbility(boulder, fighters, fx, testRNG())
	if near.VX <= far.VX {
		t.Errorf("closer target should take more knockback: near %f, far %f", near.VX, far.VX)
	}
}

func TestStunBlastLocksTargets(t *testing.T) {
	volt := testFighter(0, 2, 400, 480) // stun blast
	victim := testFighter(1, 0, 460, 480)
	outside := testFighter(2, 1, 800, 480)
	fighters := []*Fighter{volt, victim, outside}
	fx := NewEffects(testRNG())

	InvokeAbility(volt, fighters, fx, testRNG())
	spec := SpecFor(AbilityStunBlast)
	if victim.StunT != spec.StunFor {
		t.Errorf("expected stun %f, got %f", spec.StunFor, victim.StunT)
	}
	if !victim.Stunned() {
		t.Error("victim should report stunned")
	}
	if outside.StunT != 0 {
		t.Error("target outside the radius must not be stunned")
	}
	if victim.VX != 0 {
		t.Error("stun blast deals no knockback")
	}
}

func TestDecoySpawnsMarker(t *testing.T) {
	wisp := testFighter(0, 3, 400, 480) // decoy
	fx := NewEffects(testRNG())

	InvokeAbility(wisp, []*Fighter{wisp}, fx, testRNG())
	if len(fx.Decoys) != 1 {
		t.Fatalf("expected 1 decoy, got %d", len(fx.Decoys))
	}
	d := fx.Decoys[0]
	if d.X != 400 || d.Y != 480 {
		t.Errorf("decoy should appear at the caster's position, got (%f, %f)", d.X, d.Y)
	}
	if d.Char != wisp.Profile.ID {
		t.Errorf("decoy should carry the caster's character id, got %d", d.Char)
	}
	if wisp.VY != -JumpVelocity {
		t.Errorf("caster should hop, VY = %f", wisp.VY)
	}
	if wisp.VX == 0 {
		t.Error("caster should hop sideways")
	}
}

func TestAbilityCooldownGate(t *testing.T) {
	blaze := testFighter(0, 0, 400, 480)
	blaze.AbilityCD = 10
	fx := NewEffects(testRNG())

	if InvokeAbility(blaze, []*Fighter{blaze}, fx, testRNG()) {
		t.Error("ability on cooldown must not fire")
	}
	if blaze.VX != 0 {
		t.Error("gated ability must not change state")
	}
	if blaze.AbilityCD != 10 {
		t.Error("gated ability must not reset the cooldown")
	}
}

func TestAbilityNeverTouchesLives(t *testing.T) {
	boulder := testFighter(0, 1, 400, 480)
	victim := testFighter(1, 0, 440, 480)
	fx := NewEffects(testRNG())

	InvokeAbility(boulder, []*Fighter{boulder, victim}, fx, testRNG())
	if victim.Lives != StartingLives || !victim.Alive {
		t.Error("abilities must not change lives or alive state")
	}
}

func TestAbilityKindString(t *testing.T) {
	cases := map[AbilityKind]string{
		AbilityDash:      "dash",
		AbilityShockwave: "shockwave",
		AbilityStunBlast: "stunblast",
		AbilityDecoy:     "decoy",
		AbilityKind(99):  "unknown",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("AbilityKind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestEveryCharacterHasDistinctAbility(t *testing.T) {
	seen := make(map[AbilityKind]bool)
	for _, c := range Characters {
		if seen[c.Ability] {
			t.Errorf("ability %s assigned twice", c.Ability)
		}
		seen[c.Ability] = true
		if _, ok := abilitySpecs[c.Ability]; !ok {
			t.Errorf("no spec for ability %s", c.Ability)
		}
	}
}
