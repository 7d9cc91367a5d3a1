package constants

import "time"

// Simulation timing
const (
	// FrameUpdateInterval is the default tick period, roughly one display frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval bounds configured tick periods from below
	MinFrameInterval = 4 * time.Millisecond
)

// Canvas sizing
const (
	// MaxCanvasWidth caps the playfield width
	MaxCanvasWidth = 480

	// CanvasAspectNum / CanvasAspectDen is height over width
	CanvasAspectNum = 4
	CanvasAspectDen = 3
)

// Session channels
const (
	// SendBufferSize is the per-connection outbound frame queue depth
	SendBufferSize = 64
)
