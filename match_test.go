package main

import "testing"

func matchFighters(n int) []*Fighter {
	fighters := make([]*Fighter, n)
	for i := 0; i < n; i++ {
		sp := spawnSlots[i%len(spawnSlots)]
		fighters[i] = NewFighter(i, "f", CharacterByID(i), i+1, sp.X, sp.Y, sp.Facing)
	}
	return fighters
}

func TestShouldResolveOnTimer(t *testing.T) {
	fighters := matchFighters(3)
	ms := NewMatchState(3)

	if ms.ShouldResolve(fighters) {
		t.Error("fresh round should not resolve")
	}
	ms.TimeLeft = 0
	if !ms.ShouldResolve(fighters) {
		t.Error("expired timer should resolve")
	}
}

func TestShouldResolveOnLastSurvivor(t *testing.T) {
	fighters := matchFighters(3)
	ms := NewMatchState(3)

	fighters[1].Alive = false
	if ms.ShouldResolve(fighters) {
		t.Error("two survivors should keep playing")
	}
	fighters[2].Alive = false
	if !ms.ShouldResolve(fighters) {
		t.Error("single survivor should resolve")
	}
}

func TestShouldResolveOnlyWhilePlaying(t *testing.T) {
	fighters := matchFighters(3)
	ms := NewMatchState(3)
	ms.Phase = PhaseRoundEnd
	ms.TimeLeft = 0

	if ms.ShouldResolve(fighters) {
		t.Error("resolution is only due during play")
	}
}

func TestResolveRoundLastSurvivorWins(t *testing.T) {
	fighters := matchFighters(3)
	fighters[0].Alive = false
	fighters[2].Alive = false
	ms := NewMatchState(3)

	winner := ms.ResolveRound(fighters)
	if winner != 1 {
		t.Errorf("expected winner 1, got %d", winner)
	}
	if ms.Wins[1] != 1 {
		t.Errorf("expected win counted, got %v", ms.Wins)
	}
	if ms.Phase != PhaseRoundEnd {
		t.Errorf("expected roundEnd phase, got %d", ms.Phase)
	}
	if ms.EndT != RoundEndDelay {
		t.Errorf("expected end delay %f, got %f", RoundEndDelay, ms.EndT)
	}
}

func TestResolveRoundDrawAwardsNothing(t *testing.T) {
	fighters := matchFighters(3)
	for _, f := range fighters {
		f.Alive = false
	}
	ms := NewMatchState(3)

	winner := ms.ResolveRound(fighters)
	if winner != -1 {
		t.Errorf("expected draw, got winner %d", winner)
	}
	for i, w := range ms.Wins {
		if w != 0 {
			t.Errorf("draw must award nothing, Wins[%d] = %d", i, w)
		}
	}
	if ms.Phase != PhaseRoundEnd {
		t.Error("draw still ends the round")
	}
}

func TestResolveRoundTimeoutByLives(t *testing.T) {
	fighters := matchFighters(3)
	fighters[0].Lives = 1
	fighters[1].Lives = 3
	fighters[2].Lives = 2
	ms := NewMatchState(3)
	ms.TimeLeft = 0

	winner := ms.ResolveRound(fighters)
	if winner != 1 {
		t.Errorf("expected most lives to win, got %d", winner)
	}
}

func TestResolveRoundTimeoutTieBreaksEarliest(t *testing.T) {
	fighters := matchFighters(3)
	fighters[0].Lives = 2
	fighters[1].Lives = 2
	fighters[2].Lives = 2
	ms := NewMatchState(3)
	ms.TimeLeft = 0

	winner := ms.ResolveRound(fighters)
	if winner != 0 {
		t.Errorf("tie should break to the earliest fighter, got %d", winner)
	}
}

func TestMatchEndsAtThreshold(t *testing.T) {
	fighters := matchFighters(2)
	ms := NewMatchState(2)
	ms.Wins[0] = MatchWinThreshold - 1

	fighters[1].Alive = false
	ms.ResolveRound(fighters)
	if ms.Phase != PhaseGameOver {
		t.Errorf("expected gameOver at threshold, got phase %d", ms.Phase)
	}
	if ms.MatchWinner != 0 {
		t.Errorf("expected match winner 0, got %d", ms.MatchWinner)
	}
}

func TestStartNextRound(t *testing.T) {
	fighters := matchFighters(2)
	fighters[1].Alive = false
	ms := NewMatchState(2)
	ms.ResolveRound(fighters)

	ms.StartNextRound()
	if ms.Round != 2 {
		t.Errorf("expected round 2, got %d", ms.Round)
	}
	if ms.TimeLeft != RoundDuration {
		t.Errorf("timer should reset, got %f", ms.TimeLeft)
	}
	if ms.Phase != PhasePlaying {
		t.Errorf("expected playing phase, got %d", ms.Phase)
	}
	if ms.RoundWinner != -1 {
		t.Error("round winner should clear")
	}
	if ms.Wins[0] != 1 {
		t.Error("win counters persist across rounds")
	}
}
