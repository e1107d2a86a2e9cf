package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create" // create session
	MsgList     = "list"   // list sessions
	MsgCheck    = "check"  // check if session exists
	MsgStart    = "start"  // host starts the match
	MsgRematch  = "rematch"
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // token re-auth
	MsgProfile  = "profile"
)

// Server -> Client message types
const (
	MsgState       = "state" // binary msgpack snapshot
	MsgWelcome     = "welcome"
	MsgSessions    = "sessions"
	MsgJoined      = "joined"
	MsgCreated     = "created"
	MsgChecked     = "checked"
	MsgStarted     = "started"
	MsgRoundEnd    = "round_end"
	MsgMatchEnd    = "match_end"
	MsgError       = "error"
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// InputFrame is one tick's abstract action flags for a human slot. The core
// is agnostic to physical key or button bindings.
type InputFrame struct {
	Left    bool `json:"l"`
	Right   bool `json:"r"`
	Jump    bool `json:"j"`
	Attack  bool `json:"a"`
	Ability bool `json:"s"`
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
	Character int    `json:"char"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
	Character   int    `json:"char"`
}

// FighterState is broadcast per fighter each snapshot
type FighterState struct {
	ID        int     `json:"id" msgpack:"id"`
	Name      string  `json:"n" msgpack:"n"`
	Char      int     `json:"c" msgpack:"c"`
	Slot      int     `json:"sl" msgpack:"sl"` // 0 = AI
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	VX        float64 `json:"vx" msgpack:"vx"`
	VY        float64 `json:"vy" msgpack:"vy"`
	Facing    int     `json:"f" msgpack:"f"`
	Grounded  bool    `json:"g" msgpack:"g"`
	Alive     bool    `json:"a" msgpack:"a"`
	Lives     int     `json:"lv" msgpack:"lv"`
	Stun      float64 `json:"st" msgpack:"st"`
	AttackCD  float64 `json:"acd" msgpack:"acd"`
	AbilityCD float64 `json:"bcd" msgpack:"bcd"`
	Flash     float64 `json:"fl" msgpack:"fl"`
}

// PlatformState describes one static platform
type PlatformState struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	W    float64 `json:"w" msgpack:"w"`
	H    float64 `json:"h" msgpack:"h"`
	Main bool    `json:"m" msgpack:"m"`
}

// ParticleState is one active particle descriptor
type ParticleState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// DecoyState is one active decoy descriptor
type DecoyState struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	Char int     `json:"c" msgpack:"c"`
}

// MatchStateMsg is the round/match portion of a snapshot
type MatchStateMsg struct {
	Round       int     `json:"r" msgpack:"r"`
	TimeLeft    float64 `json:"tl" msgpack:"tl"`
	Phase       int     `json:"ph" msgpack:"ph"`
	Wins        []int   `json:"w" msgpack:"w"`
	RoundWinner int     `json:"rw" msgpack:"rw"`
	MatchWinner int     `json:"mw" msgpack:"mw"`
}

// Snapshot is the full read-only state published each broadcast tick
type Snapshot struct {
	Fighters  []FighterState  `json:"f" msgpack:"f"`
	Platforms []PlatformState `json:"pl" msgpack:"pl"`
	Particles []ParticleState `json:"px" msgpack:"px"`
	Decoys    []DecoyState    `json:"d" msgpack:"d"`
	Match     MatchStateMsg   `json:"m" msgpack:"m"`
	Tick      uint64          `json:"tick" msgpack:"tick"`
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	Slot      int `json:"slot"`
	Character int `json:"char"`
}

// RoundEndMsg carries the round resolution
type RoundEndMsg struct {
	WinnerID int   `json:"wid"` // -1 = draw
	Wins     []int `json:"wins"`
}

// MatchEndMsg carries the match resolution
type MatchEndMsg struct {
	WinnerID int `json:"wid"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Players int    `json:"players"`
	Started bool   `json:"started"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// CheckMsg is sent by a client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Players int    `json:"players,omitempty"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates an account
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg re-authenticates with a stored token
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"tok"`
	Username string `json:"u"`
	PlayerID int64  `json:"pid"`
}

// ProfileDataMsg returns career aggregates for an account
type ProfileDataMsg struct {
	Username  string  `json:"u"`
	RoundWins int     `json:"rw"`
	MatchWins int     `json:"mw"`
	Matches   int     `json:"m"`
	Playtime  float64 `json:"pt"`
}
