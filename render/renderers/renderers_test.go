package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/engine"
	"github.com/Caizj-lg/block-breaker-game/render"
)

func testSnapshot(state string) *engine.Snapshot {
	return &engine.Snapshot{
		State: state,
		Geometry: engine.Geometry{
			Width:        480,
			Height:       640,
			Header:       45,
			PaddleY:      605,
			PaddleHeight: 14,
			BallRadius:   6,
		},
		Paddle: components.Paddle{X: 190, Width: 100},
		Balls:  []components.Ball{{X: 240, Y: 597, Attached: true}},
		Blocks: []components.Block{
			{X: 10, Y: 60, Width: 36, Height: 16, Color: components.ColorRow0, Hits: 1},
			{X: 200, Y: 200, Width: 36, Height: 16, Color: components.ColorWall, IsWall: true, Hits: components.HitsIndestructible},
		},
		Score:    120,
		Lives:    2,
		MaxLives: 3,
		Level:    2,
	}
}

func renderToScreen(t *testing.T, snap *engine.Snapshot) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	o := render.NewRenderOrchestrator(screen)
	Register(o)
	o.RenderFrame(snap)
	return screen
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(screen tcell.SimulationScreen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(screenRow(screen, y), s) {
			return true
		}
	}
	return false
}

// fieldContains skips the header row
func fieldContains(screen tcell.SimulationScreen, r rune) bool {
	_, h := screen.Size()
	for y := constants.HeaderRows; y < h; y++ {
		if strings.ContainsRune(screenRow(screen, y), r) {
			return true
		}
	}
	return false
}

func TestHearts(t *testing.T) {
	tests := []struct {
		lives, max int
		want       string
	}{
		{3, 3, "❤❤❤"},
		{2, 3, "❤❤♡"},
		{0, 3, "♡♡♡"},
		{-1, 3, "♡♡♡"},
		{5, 3, "❤❤❤"},
	}
	for _, tc := range tests {
		if got := Hearts(tc.lives, tc.max); got != tc.want {
			t.Errorf("Hearts(%d, %d) = %q, want %q", tc.lives, tc.max, got, tc.want)
		}
	}
}

func TestOverlayForStates(t *testing.T) {
	if c := OverlayFor(testSnapshot(engine.StatePlaying)); c != nil {
		t.Errorf("Expected no overlay while playing, got %+v", c)
	}

	tests := []struct {
		state string
		title string
		line  string
	}{
		{engine.StateMenu, constants.TitleText, constants.MenuHint},
		{engine.StatePaused, constants.PausedText, constants.ResumeHint},
		{engine.StateGameOver, constants.GameOverText, "Score: 120"},
		{engine.StateLevelUp, constants.LevelClearText, "Next level: 3"},
	}
	for _, tc := range tests {
		c := OverlayFor(testSnapshot(tc.state))
		if c == nil {
			t.Errorf("%s: expected overlay", tc.state)
			continue
		}
		if c.Title != tc.title {
			t.Errorf("%s: title %q, want %q", tc.state, c.Title, tc.title)
		}
		found := false
		for _, l := range c.Lines() {
			if l == tc.line {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: missing line %q in %v", tc.state, tc.line, c.Lines())
		}
	}
}

func TestHeaderShowsScoreLevelAndHearts(t *testing.T) {
	screen := renderToScreen(t, testSnapshot(engine.StatePlaying))

	header := screenRow(screen, 0)
	if !strings.Contains(header, "SCORE 120") {
		t.Errorf("Header missing score: %q", header)
	}
	if !strings.Contains(header, "LEVEL 2") {
		t.Errorf("Header missing level: %q", header)
	}
	if n := strings.Count(header, string(constants.HeartFull)); n != 2 {
		t.Errorf("Expected 2 full hearts, got %d", n)
	}
	if n := strings.Count(header, string(constants.HeartEmpty)); n != 1 {
		t.Errorf("Expected 1 empty heart, got %d", n)
	}
}

func TestMenuFrameShowsOverlay(t *testing.T) {
	screen := renderToScreen(t, testSnapshot(engine.StateMenu))

	if !screenContains(screen, constants.TitleText) {
		t.Error("Menu frame should show the title")
	}
	if !screenContains(screen, constants.MenuHint) {
		t.Error("Menu frame should show the start hint")
	}
}

func TestGameOverFrameShowsFinalScore(t *testing.T) {
	screen := renderToScreen(t, testSnapshot(engine.StateGameOver))

	if !screenContains(screen, constants.GameOverText) {
		t.Error("Missing game over title")
	}
	if !screenContains(screen, "Score: 120") {
		t.Error("Missing final score")
	}
}

func TestPlayingFrameWithAttachedBall(t *testing.T) {
	screen := renderToScreen(t, testSnapshot(engine.StatePlaying))

	if !screenContains(screen, constants.LaunchHint) {
		t.Error("Expected launch hint while ball rests on paddle")
	}
	if screenContains(screen, constants.TitleText) {
		t.Error("No menu overlay while playing")
	}
}

func TestPlayingFrameDrawsEntities(t *testing.T) {
	snap := testSnapshot(engine.StatePlaying)
	snap.Balls = []components.Ball{{X: 250, Y: 400, DX: 3, DY: -4}}
	snap.Items = []components.Item{{X: 100, Y: 300, Type: components.ItemSplit}}

	screen := renderToScreen(t, snap)

	if r, _, _, _ := screen.GetContent(21, 1); r != constants.BlockGlyph {
		t.Errorf("Expected block glyph at (21,1), got %q", r)
	}
	for _, r := range []rune{constants.WallGlyph, constants.PaddleGlyph, constants.BallGlyph, components.ItemSplit.Glyph()} {
		if !fieldContains(screen, r) {
			t.Errorf("Expected %q in the field", r)
		}
	}
	if screenContains(screen, constants.LaunchHint) {
		t.Error("No launch hint once the ball is free")
	}
}

func TestDestroyedBlocksAreNotDrawn(t *testing.T) {
	snap := testSnapshot(engine.StatePlaying)
	snap.Blocks[0].Destroyed = true

	screen := renderToScreen(t, snap)
	if fieldContains(screen, constants.BlockGlyph) {
		t.Error("Destroyed block should not be drawn")
	}
}

func TestParticleFade(t *testing.T) {
	snap := testSnapshot(engine.StatePlaying)
	snap.Balls = nil
	snap.Particles = []components.Particle{
		{X: 250, Y: 300, Life: 25, MaxLife: 25, Color: components.ColorRow2},
	}

	screen := renderToScreen(t, snap)
	r, _, style, _ := screen.GetContent(40, 11)
	if r != constants.ParticleGlyph {
		t.Fatalf("Expected particle glyph at (40,11), got %q", r)
	}
	if fg, _, _ := style.Decompose(); fg != render.ToTcell(render.Palette(components.ColorRow2)) {
		t.Errorf("Fresh particle should have full color, got %v", fg)
	}

	snap.Particles[0].Life = 0
	screen = renderToScreen(t, snap)
	if r, _, _, _ := screen.GetContent(40, 11); r == constants.ParticleGlyph {
		t.Error("Expired particle should not be drawn")
	}
}
