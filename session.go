package main

import (
	"log"
	"sync"
	"time"
)

const maxSessions = 100

// SessionIdleTimeout is how long a session may sit idle before the reaper
// removes it. A var so tests can shorten it.
var SessionIdleTimeout = 10 * time.Minute

// Session is a joinable lobby plus its running game
type Session struct {
	ID   string
	Name string
	Game *Game

	mu         sync.Mutex
	lastActive time.Time
	authIDs    map[int]int64 // slot -> authenticated player id
}

// SetAuthID links a human slot to an authenticated account
func (s *Session) SetAuthID(slot int, playerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if playerID != 0 {
		s.authIDs[slot] = playerID
	} else {
		delete(s.authIDs, slot)
	}
}

func (s *Session) authIDFor(slot int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authIDs[slot]
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// recordMatch persists career aggregates for every authenticated human in
// the finished match. Runs on the tick goroutine; DB work is quick enough
// that a tick-length stall is acceptable.
func (s *Session) recordMatch(db *DB, res MatchResult) {
	if db == nil {
		return
	}
	for id, slot := range res.Slots {
		if slot == ControlAI {
			continue
		}
		pid := s.authIDFor(slot)
		if pid == 0 {
			continue
		}
		roundWins := 0
		if id < len(res.Wins) {
			roundWins = res.Wins[id]
		}
		won := id == res.WinnerID
		if err := db.UpdateCareerAfterMatch(pid, roundWins, won, res.Elapsed); err != nil {
			log.Printf("career update failed for player %d: %v", pid, err)
		}
	}
}

// SessionManager handles creation, lookup, and reaping of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager creates a new SessionManager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// CreateSession creates a new game session and starts its tick loop.
// Returns nil if the session limit is reached.
func (sm *SessionManager) CreateSession(name string, db *DB) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	sess := &Session{
		ID:         GenerateUUID(),
		Name:       name,
		Game:       NewGame(time.Now().UnixNano()),
		lastActive: time.Now(),
		authIDs:    make(map[int]int64),
	}
	sess.Game.SetMatchEndHandler(func(res MatchResult) {
		sess.recordMatch(db, res)
	})
	sm.sessions[sess.ID] = sess
	go sess.Game.Run()
	return sess
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// MarkActive refreshes a session's idle timer
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.RLock()
	sess := sm.sessions[id]
	sm.mu.RUnlock()
	if sess != nil {
		sess.touch()
	}
}

// RemovePlayer removes a player from a session and deletes the session
// once its last human leaves
func (sm *SessionManager) RemovePlayer(sessionID string, slot int) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Game.RemovePlayer(slot)
	sess.SetAuthID(slot, 0)

	if sess.Game.PlayerCount() == 0 {
		sess.Game.Stop()
		sm.mu.Lock()
		delete(sm.sessions, sessionID)
		sm.mu.Unlock()
	}
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:      sess.ID,
			Name:    sess.Name,
			Players: sess.Game.PlayerCount(),
			Started: sess.Game.Started(),
		})
	}
	return list
}

// ReapIdle removes sessions with no activity inside the idle window.
// Returns the number removed.
func (sm *SessionManager) ReapIdle() int {
	cutoff := time.Now().Add(-SessionIdleTimeout)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	n := 0
	for id, sess := range sm.sessions {
		if sess.idleSince().Before(cutoff) {
			sess.Game.Stop()
			delete(sm.sessions, id)
			n++
		}
	}
	return n
}

// RunReaper reaps idle sessions periodically until stop is closed
func (sm *SessionManager) RunReaper(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := sm.ReapIdle(); n > 0 {
				log.Printf("reaped %d idle sessions", n)
			}
		case <-stop:
			return
		}
	}
}
