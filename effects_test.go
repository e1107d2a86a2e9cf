package main

import "testing"

func TestBurstCount(t *testing.T) {
	fx := NewEffects(testRNG())
	fx.Burst(100, 100, 8)
	if len(fx.Particles) != 8 {
		t.Errorf("expected 8 particles, got %d", len(fx.Particles))
	}
}

func TestParticlesExpire(t *testing.T) {
	fx := NewEffects(testRNG())
	fx.Burst(100, 100, 10)

	for i := 0; i < int(ParticleLife)+1; i++ {
		fx.Update(1.0)
	}
	if len(fx.Particles) != 0 {
		t.Errorf("all particles should expire, %d left", len(fx.Particles))
	}
}

func TestParticlesMove(t *testing.T) {
	fx := NewEffects(testRNG())
	fx.Burst(100, 100, 1)
	p0 := fx.Particles[0]

	fx.Update(1.0)
	p1 := fx.Particles[0]
	if p1.X == p0.X && p1.Y == p0.Y {
		t.Error("particle should move between ticks")
	}
	if p1.Life >= p0.Life {
		t.Error("particle life should decay")
	}
}

func TestDecoyExpires(t *testing.T) {
	fx := NewEffects(testRNG())
	fx.SpawnDecoy(100, 100, 3)

	fx.Update(DecoyLife - 1)
	if len(fx.Decoys) != 1 {
		t.Fatal("decoy should survive until its life runs out")
	}
	fx.Update(2)
	if len(fx.Decoys) != 0 {
		t.Error("decoy should expire")
	}
}

func TestEffectsClear(t *testing.T) {
	fx := NewEffects(testRNG())
	fx.Burst(100, 100, 5)
	fx.SpawnDecoy(100, 100, 0)

	fx.Clear()
	if len(fx.Particles) != 0 || len(fx.Decoys) != 0 {
		t.Error("clear should drop all descriptors")
	}
}
