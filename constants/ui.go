package constants

// Glyphs for the terminal renderer
const (
	HeartFull  = '❤'
	HeartEmpty = '♡'

	BlockGlyph    = '█'
	WallGlyph     = '▓'
	PaddleGlyph   = '▀'
	BallGlyph     = '●'
	ParticleGlyph = '·'
)

// Overlay text
const (
	TitleText      = "BLOCK BREAKER"
	MenuHint       = "ENTER to start"
	GameOverText   = "GAME OVER"
	RestartHint    = "ENTER to restart"
	LevelClearText = "LEVEL CLEAR"
	ContinueHint   = "ENTER to continue"
	PausedText     = "PAUSED"
	ResumeHint     = "P to resume"
	LaunchHint     = "SPACE to launch"
	ControlsHint   = "←/→ move  SPACE launch  P pause  Q quit"
)

// HeaderRows is the number of terminal rows used by the status header
const HeaderRows = 1

// PaddleKeyStep is the paddle travel per key press, in world units
const PaddleKeyStep = 24.0
