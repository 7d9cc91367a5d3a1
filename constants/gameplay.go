package constants

import "math"

// Scoring and lives
const (
	// ScorePerBlock is awarded for each destroyed non-wall block
	ScorePerBlock = 10

	// StartingLives is the life count of a new session and the heart row length
	StartingLives = 3

	// FirstLevel is the level of a new session
	FirstLevel = 1
)

// Block grid
const (
	// WallBaseCount plus the level is the requested wall count, capped by MaxWalls
	WallBaseCount = 3
	MaxWalls      = 8

	// WallMinRow is the first row eligible for wall placement
	WallMinRow = 2
	// WallMaxRow caps wall rows regardless of grid height
	WallMaxRow = 6

	// NormalBlockHits is the durability of every breakable block
	NormalBlockHits = 1
)

// Ball geometry and launch
const (
	// AttachedBallGap separates a resting ball from the paddle top
	AttachedBallGap = 2

	// LaunchJitter is the width of the random horizontal launch component, centered on zero
	LaunchJitter = 3

	// PaddleBounceSpread maps hit offset [-0.5, 0.5] onto the bounce angle from vertical
	PaddleBounceSpread = 0.7 * math.Pi
)

// Power-ups
const (
	// SplitAngle is the rotation in radians applied to each half of a split ball
	SplitAngle = 0.3

	// ScatterBallCount balls are fanned upward by the scatter item
	ScatterBallCount = 5

	// ScatterSpread is the angle between neighboring scatter balls
	ScatterSpread = math.Pi / 8
)

// Particle bursts
const (
	BlockBurstCount  = 8
	PaddleBurstCount = 4
	WallBurstCount   = 3
	PickupBurstCount = 12

	// BurstMinSpeed and BurstSpeedRange bound radial burst velocity
	BurstMinSpeed   = 2.0
	BurstSpeedRange = 2.0

	// ScatterJitter is the maximum position offset of pickup particles
	ScatterJitter = 5.0
)
