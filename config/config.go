// Package config holds tunable playfield and rule parameters loaded from TOML
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Caizj-lg/block-breaker-game/constants"
)

// ErrInvalid reports a configuration that violates a precondition of the simulation
var ErrInvalid = errors.New("invalid config")

// Config is the full parameter set of one game
type Config struct {
	Playfield Playfield `toml:"playfield"`
	Paddle    Paddle    `toml:"paddle"`
	Ball      Ball      `toml:"ball"`
	Blocks    Blocks    `toml:"blocks"`
	Items     Items     `toml:"items"`
	Particles Particles `toml:"particles"`
	Game      Game      `toml:"game"`
	Web       Web       `toml:"web"`
}

// Playfield is the logical canvas, Header is the status bar height at the top
type Playfield struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Header float64 `toml:"header"`
}

// Paddle geometry; the paddle top sits at playfield height minus OffsetBottom
type Paddle struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	OffsetBottom float64 `toml:"offset_bottom"`
}

type Ball struct {
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"`
}

// Blocks describes the level grid; row count grows by one every two levels up to MaxRows
type Blocks struct {
	Rows      int     `toml:"rows"`
	MaxRows   int     `toml:"max_rows"`
	Cols      int     `toml:"cols"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Padding   float64 `toml:"padding"`
	TopOffset float64 `toml:"top_offset"`
}

type Items struct {
	Size       float64 `toml:"size"`
	Speed      float64 `toml:"speed"`
	DropChance float64 `toml:"drop_chance"`
}

type Particles struct {
	Gravity     float64 `toml:"gravity"`
	BurstLife   int     `toml:"burst_life"`
	ScatterLife int     `toml:"scatter_life"`
}

// Game holds session rules; Seed 0 means seed from the clock
type Game struct {
	Lives  int    `toml:"lives"`
	TickMS int    `toml:"tick_ms"`
	Seed   uint64 `toml:"seed"`
}

type Web struct {
	Addr string `toml:"addr"`
}

// Default returns the stock parameters
func Default() Config {
	return Config{
		Playfield: Playfield{Width: 480, Height: 640, Header: 45},
		Paddle:    Paddle{Width: 100, Height: 14, OffsetBottom: 35},
		Ball:      Ball{Radius: 6, Speed: 5},
		Blocks: Blocks{
			Rows:      10,
			MaxRows:   12,
			Cols:      12,
			Width:     36,
			Height:    16,
			Padding:   3,
			TopOffset: 60,
		},
		Items:     Items{Size: 20, Speed: 3, DropChance: 0.15},
		Particles: Particles{Gravity: 0.1, BurstLife: 25, ScatterLife: 30},
		Game: Game{
			Lives:  constants.StartingLives,
			TickMS: int(constants.FrameUpdateInterval / time.Millisecond),
		},
		Web: Web{Addr: ":8080"},
	}
}

// Load overlays the TOML file at path on the defaults
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks the geometric preconditions the simulation relies on
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have positive size", ErrInvalid)
	case c.Playfield.Header < 0 || c.Playfield.Header >= c.Playfield.Height:
		return fmt.Errorf("%w: header %v outside playfield", ErrInvalid, c.Playfield.Header)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle width and height must be positive", ErrInvalid)
	case c.Paddle.Width > c.Playfield.Width:
		return fmt.Errorf("%w: paddle wider than playfield", ErrInvalid)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball radius and speed must be positive", ErrInvalid)
	case c.Blocks.Cols < 3 || c.Blocks.Rows <= 0 || c.Blocks.MaxRows < c.Blocks.Rows:
		return fmt.Errorf("%w: block grid %dx%d (max rows %d)", ErrInvalid, c.Blocks.Cols, c.Blocks.Rows, c.Blocks.MaxRows)
	case c.Blocks.Width <= 0 || c.Blocks.Height <= 0 || c.Blocks.Padding < 0:
		return fmt.Errorf("%w: block dimensions must be positive", ErrInvalid)
	case c.Items.DropChance < 0 || c.Items.DropChance > 1:
		return fmt.Errorf("%w: drop chance %v outside [0, 1]", ErrInvalid, c.Items.DropChance)
	case c.Items.Size <= 0 || c.Items.Speed <= 0:
		return fmt.Errorf("%w: item size and speed must be positive", ErrInvalid)
	case c.Particles.BurstLife <= 0 || c.Particles.ScatterLife <= 0:
		return fmt.Errorf("%w: particle life must be positive", ErrInvalid)
	case c.Game.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalid)
	case c.TickInterval() < constants.MinFrameInterval:
		return fmt.Errorf("%w: tick interval %v below %v", ErrInvalid, c.TickInterval(), constants.MinFrameInterval)
	}
	return nil
}

// TickInterval returns the scheduler period
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMS) * time.Millisecond
}

// PaddleY returns the paddle top edge
func (c Config) PaddleY() float64 {
	return c.Playfield.Height - c.Paddle.OffsetBottom
}

// MinWidth is the narrowest playfield that still holds the paddle and the full block grid
func (c Config) MinWidth() float64 {
	grid := float64(c.Blocks.Cols)*(c.Blocks.Width+c.Blocks.Padding) - c.Blocks.Padding
	return max(c.Paddle.Width, grid)
}

// Resized returns a copy with the playfield fitted to the available width
// Width is capped at MaxCanvasWidth, floored at MinWidth, and height follows the fixed aspect ratio
func (c Config) Resized(available float64) Config {
	if available <= 0 {
		return c
	}
	w := max(min(available, constants.MaxCanvasWidth), c.MinWidth())
	c.Playfield.Width = w
	c.Playfield.Height = w * constants.CanvasAspectNum / constants.CanvasAspectDen
	return c
}
