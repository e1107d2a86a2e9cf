package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // simulation ticks per second (reference rate)
	BroadcastRate  = 30 // snapshot broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	// Wall-clock frame deltas are clamped to this bound before being
	// normalized, so a stalled process cannot produce a huge simulation jump
	MaxFrameDelta = 50 * time.Millisecond

	MinFighters   = 3
	MaxHumanSlots = 3
)

// Broadcaster is the outbound side of a connected client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// seat is a claimed human slot in the lobby
type seat struct {
	name      string
	character int
}

// Game owns one match: the lobby seats, the simulation state, and the tick
// loop. All state behind the mutex is mutated only by the tick goroutine and
// the handler methods; clients read published snapshots and push input flags
// for the next tick.
type Game struct {
	mu      sync.RWMutex
	seats   [MaxHumanSlots]*seat // index = slot-1
	clients map[int]Broadcaster  // slot -> client
	inputs  [MaxHumanSlots + 1]InputFrame

	fighters  []*Fighter
	platforms []Platform
	fx        *Effects
	match     MatchState
	rng       *rand.Rand

	tick      uint64
	started   bool
	running   bool
	stop      chan struct{}
	lastTick  time.Time
	startedAt time.Time
	rematch   map[int]bool

	attackIntents  []int
	abilityIntents []int

	// onMatchEnd fires synchronously from the resolution call that decides
	// the match
	onMatchEnd func(res MatchResult)
}

// MatchResult summarizes a decided match for persistence hooks. Slots maps
// fighter id to human slot (ControlAI for AI fighters).
type MatchResult struct {
	WinnerID int
	Elapsed  float64
	Wins     []int
	Slots    []int
}

// NewGame creates a game in the lobby phase with the default arena
func NewGame(seed int64) *Game {
	return &Game{
		clients:   make(map[int]Broadcaster),
		platforms: DefaultPlatforms(),
		rng:       rand.New(rand.NewSource(seed)),
		stop:      make(chan struct{}),
		rematch:   make(map[int]bool),
	}
}

// SetMatchEndHandler registers the match-end notification callback.
// It runs on the tick goroutine and must not call back into the game.
func (g *Game) SetMatchEndHandler(fn func(res MatchResult)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onMatchEnd = fn
}

// AddPlayer claims a free human slot in the lobby. Returns the slot (1-3)
// or an error when the lobby is full, the match already started, or the
// character pick is invalid.
func (g *Game) AddPlayer(name string, character int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return 0, fmt.Errorf("match already started")
	}
	if character < 0 || character >= len(Characters) {
		return 0, fmt.Errorf("unknown character %d", character)
	}
	for i := range g.seats {
		if g.seats[i] == nil {
			g.seats[i] = &seat{name: name, character: character}
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("session full")
}

// RemovePlayer frees a human slot. Before the match starts the seat opens
// up again; afterwards the fighter stays in the arena (ids are stable for
// the match's lifetime) but stops receiving input.
func (g *Game) RemovePlayer(slot int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if slot < 1 || slot > MaxHumanSlots {
		return
	}
	if !g.started {
		g.seats[slot-1] = nil
	}
	delete(g.clients, slot)
	g.inputs[slot] = InputFrame{}
	delete(g.rematch, slot)
}

// SetClient associates a broadcaster with a human slot
func (g *Game) SetClient(slot int, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[slot] = client
}

// HandleInput stores one slot's action flags for the next tick
func (g *Game) HandleInput(slot int, in InputFrame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if slot >= 1 && slot <= MaxHumanSlots {
		g.inputs[slot] = in
	}
}

// PlayerCount returns the number of claimed human slots
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, s := range g.seats {
		if s != nil {
			n++
		}
	}
	return n
}

// Started reports whether the match has been constructed
func (g *Game) Started() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.started
}

// Start validates the roster and constructs fresh simulation state: human
// picks in slot order, AI fighters filling the remaining roster up to
// MinFighters. Invalid rosters are rejected here, never mid-round.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return fmt.Errorf("match already started")
	}
	if err := ValidatePlatforms(g.platforms); err != nil {
		return err
	}

	picked := make(map[int]bool)
	humans := 0
	for _, s := range g.seats {
		if s == nil {
			continue
		}
		humans++
		if picked[s.character] {
			return fmt.Errorf("character %s picked twice", CharacterByID(s.character).Name)
		}
		picked[s.character] = true
	}
	if humans == 0 {
		return fmt.Errorf("need at least one human player")
	}

	g.fighters = g.fighters[:0]
	for i, s := range g.seats {
		if s == nil {
			continue
		}
		id := len(g.fighters)
		sp := spawnSlots[id%len(spawnSlots)]
		g.fighters = append(g.fighters, NewFighter(id, s.name, CharacterByID(s.character), i+1, sp.X, sp.Y, sp.Facing))
	}

	// AI fills the roster with characters nobody picked
	for c := 0; len(g.fighters) < MinFighters && c < len(Characters); c++ {
		if picked[c] {
			continue
		}
		picked[c] = true
		id := len(g.fighters)
		sp := spawnSlots[id%len(spawnSlots)]
		g.fighters = append(g.fighters, NewFighter(id, Characters[c].Name, &Characters[c], ControlAI, sp.X, sp.Y, sp.Facing))
	}

	g.fx = NewEffects(g.rng)
	g.match = NewMatchState(len(g.fighters))
	g.started = true
	g.startedAt = time.Now()
	g.broadcastMsg(Envelope{T: MsgStarted})
	return nil
}

// HandleRematch records a rematch vote; when every connected human slot has
// voted after a finished match, the whole match restarts from round one with
// fresh lives and win counters.
func (g *Game) HandleRematch(slot int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.match.Phase != PhaseGameOver {
		return
	}
	g.rematch[slot] = true
	for s := range g.clients {
		if !g.rematch[s] {
			return
		}
	}
	for _, f := range g.fighters {
		f.Lives = StartingLives
		f.ResetForRound()
	}
	g.fx.Clear()
	g.match = NewMatchState(len(g.fighters))
	g.rematch = make(map[int]bool)
	g.startedAt = time.Now()
	g.broadcastMsg(Envelope{T: MsgStarted})
}

// Run starts the tick loop. Each tick measures the wall-clock delta since
// the previous one, clamps it, and normalizes it against the reference rate
// so gameplay speed is independent of scheduling hiccups.
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.lastTick = time.Now()
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			g.mu.Lock()
			delta := now.Sub(g.lastTick)
			g.lastTick = now
			if delta > MaxFrameDelta {
				delta = MaxFrameDelta
			}
			g.update(delta.Seconds() * TickRate)
			g.mu.Unlock()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the tick loop and releases the ticker
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// update runs one simulation tick. step is the normalized timestep: 1.0 at
// exactly the reference rate. Caller holds the mutex. Component order is
// fixed so no component observes a partially-updated tick.
func (g *Game) update(step float64) {
	g.tick++
	if !g.started {
		return
	}
	seconds := step / TickRate

	switch g.match.Phase {
	case PhasePlaying:
		// AI decisions
		for _, f := range g.fighters {
			if !f.IsAI() {
				continue
			}
			attack, ability := StepAI(f, g.fighters, g.platforms, g.rng, step)
			if attack {
				g.attackIntents = append(g.attackIntents, f.ID)
			}
			if ability {
				g.abilityIntents = append(g.abilityIntents, f.ID)
			}
		}

		// Human input application
		for _, f := range g.fighters {
			if f.IsAI() {
				continue
			}
			attack, ability := f.ApplyInput(g.inputs[f.Slot], step)
			if attack {
				g.attackIntents = append(g.attackIntents, f.ID)
			}
			if ability {
				g.abilityIntents = append(g.abilityIntents, f.ID)
			}
		}

		// Physics integration and platform collision
		for _, f := range g.fighters {
			StepPhysics(f, g.platforms, step)
		}

		// Combat and ability resolution of this tick's intents
		for _, id := range g.attackIntents {
			ResolveAttack(g.fighters[id], g.fighters, g.fx, g.rng)
		}
		for _, id := range g.abilityIntents {
			InvokeAbility(g.fighters[id], g.fighters, g.fx, g.rng)
		}
		g.attackIntents = g.attackIntents[:0]
		g.abilityIntents = g.abilityIntents[:0]

		// Status timer decay
		for _, f := range g.fighters {
			f.TickTimers(step)
		}

		// Ring-outs and round timer
		for _, f := range g.fighters {
			if f.Alive && FellOut(f) {
				g.eliminate(f)
			}
		}
		g.match.TimeLeft -= seconds
		if g.match.TimeLeft < 0 {
			g.match.TimeLeft = 0
		}

		// Effect decay
		g.fx.Update(step)

		// Round/match evaluation
		if g.match.ShouldResolve(g.fighters) {
			g.resolveRound()
		}

	case PhaseRoundEnd:
		g.fx.Update(step)
		g.match.EndT -= seconds
		if g.match.EndT <= 0 {
			g.nextRound()
		}
	}

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// eliminate handles a ring-out: the fighter leaves the round, loses one
// life (floored at zero), and is parked off-stage until the next round.
func (g *Game) eliminate(f *Fighter) {
	f.Alive = false
	f.VX = 0
	f.VY = 0
	if f.Lives > 0 {
		f.Lives--
	}
	g.fx.Burst(f.X, ArenaHeight, RingOutBurst)
	f.X = -200
	f.Y = -400
}

// resolveRound scores the round and publishes the transition events
func (g *Game) resolveRound() {
	winner := g.match.ResolveRound(g.fighters)

	wins := make([]int, len(g.match.Wins))
	copy(wins, g.match.Wins)
	g.broadcastMsg(Envelope{T: MsgRoundEnd, Data: RoundEndMsg{WinnerID: winner, Wins: wins}})

	if g.match.Phase == PhaseGameOver {
		g.broadcastMsg(Envelope{T: MsgMatchEnd, Data: MatchEndMsg{WinnerID: g.match.MatchWinner}})
		if g.onMatchEnd != nil {
			slots := make([]int, len(g.fighters))
			for i, f := range g.fighters {
				slots[i] = f.Slot
			}
			g.onMatchEnd(MatchResult{
				WinnerID: g.match.MatchWinner,
				Elapsed:  time.Since(g.startedAt).Seconds(),
				Wins:     wins,
				Slots:    slots,
			})
		}
	}
}

// nextRound restores the starting layout and fresh per-round state while
// preserving lives and win counters
func (g *Game) nextRound() {
	g.fx.Clear()
	for _, f := range g.fighters {
		f.ResetForRound()
	}
	g.match.StartNextRound()
}

// buildSnapshot assembles the immutable per-tick state for the renderer
func (g *Game) buildSnapshot() Snapshot {
	snap := Snapshot{
		Fighters:  make([]FighterState, 0, len(g.fighters)),
		Platforms: make([]PlatformState, 0, len(g.platforms)),
		Particles: make([]ParticleState, 0, len(g.fx.Particles)),
		Decoys:    make([]DecoyState, 0, len(g.fx.Decoys)),
		Match: MatchStateMsg{
			Round:       g.match.Round,
			TimeLeft:    round1(g.match.TimeLeft),
			Phase:       int(g.match.Phase),
			Wins:        append([]int(nil), g.match.Wins...),
			RoundWinner: g.match.RoundWinner,
			MatchWinner: g.match.MatchWinner,
		},
		Tick: g.tick,
	}
	for _, f := range g.fighters {
		snap.Fighters = append(snap.Fighters, f.ToState())
	}
	for _, p := range g.platforms {
		snap.Platforms = append(snap.Platforms, PlatformState{X: p.X, Y: p.Y, W: p.W, H: p.H, Main: p.Main})
	}
	for _, p := range g.fx.Particles {
		snap.Particles = append(snap.Particles, ParticleState{X: round1(p.X), Y: round1(p.Y)})
	}
	for _, d := range g.fx.Decoys {
		snap.Decoys = append(snap.Decoys, DecoyState{X: round1(d.X), Y: round1(d.Y), Char: d.Char})
	}
	return snap
}

// broadcastState sends the msgpack-encoded snapshot to all clients
func (g *Game) broadcastState() {
	if !g.started {
		return
	}
	data, err := msgpack.Marshal(g.buildSnapshot())
	if err != nil {
		return
	}
	for _, client := range g.clients {
		client.SendBinary(data)
	}
}

// broadcastMsg sends a JSON envelope to all clients in the session
func (g *Game) broadcastMsg(msg Envelope) {
	for _, client := range g.clients {
		client.SendJSON(msg)
	}
}
