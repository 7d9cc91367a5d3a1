package web

import (
	"encoding/json"

	"github.com/Caizj-lg/block-breaker-game/engine"
)

// Client -> Server message types
const (
	MsgInput    = "input"
	MsgLaunch   = "launch"
	MsgStart    = "start"
	MsgRestart  = "restart"
	MsgContinue = "continue"
	MsgPause    = "pause"
	MsgResume   = "resume"
	MsgResize   = "resize"
)

// Server -> Client message types
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

// Frame encodings selected by the enc query parameter
const (
	EncodingMsgpack = "msgpack"
	EncodingJSON    = "json"
)

// Envelope wraps all outgoing text messages with a type field
type Envelope struct {
	T    string `json:"t" msgpack:"t"`
	Data any    `json:"d,omitempty" msgpack:"d,omitempty"`
}

// InEnvelope is used for incoming messages, json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// InputMsg carries the pointer x in world coordinates; the paddle centers on it
type InputMsg struct {
	X float64 `json:"x"`
}

// ResizeMsg carries the available canvas width
type ResizeMsg struct {
	W float64 `json:"w"`
}

// WelcomeMsg is sent once per connection
type WelcomeMsg struct {
	SessionID string  `json:"sid"`
	Encoding  string  `json:"enc"`
	Width     float64 `json:"w"`
	Height    float64 `json:"h"`
}

// ErrorMsg reports a rejected client message
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// PaddleState is the paddle rectangle
type PaddleState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	W float64 `json:"w" msgpack:"w"`
	H float64 `json:"h" msgpack:"h"`
}

// BallState is one ball; A marks a ball resting on the paddle
type BallState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	A bool    `json:"a,omitempty" msgpack:"a,omitempty"`
}

// BlockState is one live block, destroyed blocks are not sent
type BlockState struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	W    float64 `json:"w" msgpack:"w"`
	H    float64 `json:"h" msgpack:"h"`
	C    string  `json:"c" msgpack:"c"`
	Wall bool    `json:"wall,omitempty" msgpack:"wall,omitempty"`
}

// ItemState is one falling power-up
type ItemState struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Glyph string  `json:"g" msgpack:"g"`
	C     string  `json:"c" msgpack:"c"`
}

// ParticleState is one particle with its fade alpha
type ParticleState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	A float64 `json:"a" msgpack:"a"`
	C string  `json:"c" msgpack:"c"`
}

// EffectState is one render event since the previous frame
type EffectState struct {
	Kind string  `json:"k" msgpack:"k"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	C    string  `json:"c" msgpack:"c"`
	N    int     `json:"n" msgpack:"n"`
}

// GameState is the full state frame sent after every tick and command
type GameState struct {
	State  string  `json:"s" msgpack:"s"`
	Width  float64 `json:"w" msgpack:"w"`
	Height float64 `json:"h" msgpack:"h"`
	Header float64 `json:"hd" msgpack:"hd"`
	Radius float64 `json:"r" msgpack:"r"`
	Size   float64 `json:"is" msgpack:"is"`

	Paddle    PaddleState     `json:"p" msgpack:"p"`
	Balls     []BallState     `json:"b" msgpack:"b"`
	Blocks    []BlockState    `json:"bl" msgpack:"bl"`
	Items     []ItemState     `json:"it" msgpack:"it"`
	Particles []ParticleState `json:"pt" msgpack:"pt"`
	Effects   []EffectState   `json:"fx,omitempty" msgpack:"fx,omitempty"`

	Score    int    `json:"sc" msgpack:"sc"`
	Lives    int    `json:"l" msgpack:"l"`
	MaxLives int    `json:"ml" msgpack:"ml"`
	Level    int    `json:"lv" msgpack:"lv"`
	Tick     uint64 `json:"t" msgpack:"t"`
}

// NewGameState converts a snapshot to its wire form
func NewGameState(s *engine.Snapshot) GameState {
	gs := GameState{
		State:  s.State,
		Width:  s.Width,
		Height: s.Height,
		Header: s.Header,
		Radius: s.BallRadius,
		Size:   s.ItemSize,
		Paddle: PaddleState{
			X: s.Paddle.X,
			Y: s.PaddleY,
			W: s.Paddle.Width,
			H: s.PaddleHeight,
		},
		Balls:     make([]BallState, 0, len(s.Balls)),
		Blocks:    make([]BlockState, 0, len(s.Blocks)),
		Items:     make([]ItemState, 0, len(s.Items)),
		Particles: make([]ParticleState, 0, len(s.Particles)),
		Score:     s.Score,
		Lives:     s.Lives,
		MaxLives:  s.MaxLives,
		Level:     s.Level,
		Tick:      s.Ticks,
	}

	for _, b := range s.Balls {
		gs.Balls = append(gs.Balls, BallState{X: b.X, Y: b.Y, A: b.Attached})
	}
	for _, b := range s.Blocks {
		if b.Destroyed {
			continue
		}
		gs.Blocks = append(gs.Blocks, BlockState{X: b.X, Y: b.Y, W: b.Width, H: b.Height, C: b.Color.Hex(), Wall: b.IsWall})
	}
	for _, it := range s.Items {
		gs.Items = append(gs.Items, ItemState{X: it.X, Y: it.Y, Glyph: string(it.Type.Glyph()), C: it.Type.Color().Hex()})
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		gs.Particles = append(gs.Particles, ParticleState{X: p.X, Y: p.Y, A: p.Alpha(), C: p.Color.Hex()})
	}
	for _, e := range s.Effects {
		gs.Effects = append(gs.Effects, EffectState{Kind: e.Kind.String(), X: e.X, Y: e.Y, C: e.Color.Hex(), N: e.Count})
	}
	return gs
}
