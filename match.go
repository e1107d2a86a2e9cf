package main

// Phase is the round/match lifecycle state. Exactly one is active.
type Phase int

const (
	PhasePlaying  Phase = 0
	PhaseRoundEnd Phase = 1
	PhaseGameOver Phase = 2
)

const (
	RoundDuration     = 60.0 // seconds
	RoundEndDelay     = 3.0  // seconds shown between rounds
	MatchWinThreshold = 2    // best-of-3
	StartingLives     = 3
)

// MatchState tracks round number, timer, phase and scoring. Wins is a
// parallel array indexed identically to the fighters slice.
type MatchState struct {
	Round       int
	TimeLeft    float64 // seconds
	Phase       Phase
	Wins        []int
	RoundWinner int     // fighter id, -1 = none/draw
	MatchWinner int     // fighter id, -1 = undecided
	EndT        float64 // seconds left in the roundEnd pause
}

// NewMatchState creates match state for n fighters
func NewMatchState(n int) MatchState {
	return MatchState{
		Round:       1,
		TimeLeft:    RoundDuration,
		Phase:       PhasePlaying,
		Wins:        make([]int, n),
		RoundWinner: -1,
		MatchWinner: -1,
	}
}

// ShouldResolve reports whether round resolution is due: the timer hit
// zero, or at most one fighter is still alive.
func (ms *MatchState) ShouldResolve(fighters []*Fighter) bool {
	if ms.Phase != PhasePlaying {
		return false
	}
	if ms.TimeLeft <= 0 {
		return true
	}
	return countAlive(fighters) <= 1
}

// ResolveRound scores the round and transitions the phase. Exactly one
// survivor wins outright; zero survivors is a draw and awards nothing; with
// several survivors (timer expiry) the greatest remaining lives wins, ties
// broken by the earliest fighter in a single left-to-right scan. The match
// ends in this same call the instant any win counter reaches the threshold.
// Returns the round winner id, or -1 on a draw.
func (ms *MatchState) ResolveRound(fighters []*Fighter) int {
	winner := -1
	switch countAlive(fighters) {
	case 0:
		// draw
	case 1:
		for _, f := range fighters {
			if f.Alive {
				winner = f.ID
				break
			}
		}
	default:
		bestLives := -1
		for _, f := range fighters {
			if f.Alive && f.Lives > bestLives {
				bestLives = f.Lives
				winner = f.ID
			}
		}
	}

	if winner >= 0 {
		ms.Wins[winner]++
	}
	ms.RoundWinner = winner
	ms.Phase = PhaseRoundEnd
	ms.EndT = RoundEndDelay

	for id, w := range ms.Wins {
		if w >= MatchWinThreshold {
			ms.Phase = PhaseGameOver
			ms.MatchWinner = id
			break
		}
	}
	return winner
}

// StartNextRound resets the timer and phase for a fresh round. The caller
// restores the fighters and clears effects; lives and win counters persist.
func (ms *MatchState) StartNextRound() {
	ms.Round++
	ms.TimeLeft = RoundDuration
	ms.Phase = PhasePlaying
	ms.RoundWinner = -1
}

func countAlive(fighters []*Fighter) int {
	n := 0
	for _, f := range fighters {
		if f.Alive {
			n++
		}
	}
	return n
}
