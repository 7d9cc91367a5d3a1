package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/core"
	"github.com/Caizj-lg/block-breaker-game/engine"
	"github.com/Caizj-lg/block-breaker-game/modes"
	"github.com/Caizj-lg/block-breaker-game/render"
	"github.com/Caizj-lg/block-breaker-game/render/renderers"
	"github.com/Caizj-lg/block-breaker-game/systems"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

const (
	logDir      = "logs"
	logFileName = "breakout.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 seeds from the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
)

// now stamps rotated log names
var now = time.Now

// setupLogging routes the standard logger to a rotated file in debug mode and discards it otherwise
// The terminal owns stdout, so log output never goes there
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("breakout-%s.log", now().Format("20060102-150405")))
		rotateErr = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		log.Printf("log rotation failed, appending to %s: %v", logPath, rotateErr)
	}
	return f
}

func loadConfig(path string, seed uint64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig(*configFlag, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *configFlag != "" {
		log.Printf("config loaded from %s", *configFlag)
	} else {
		log.Printf("config: defaults")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Goroutines started through core.Go restore the terminal before reporting
	core.SetCrashHandler(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
	}()

	game, err := engine.NewGame(cfg, systems.NewPhysicsSystem(cfg, vmath.NewFastRand(cfg.Game.Seed)))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	log.Printf("game created: seed=%d playfield=%.0fx%.0f", cfg.Game.Seed, cfg.Playfield.Width, cfg.Playfield.Height)

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.Register(orchestrator)

	inputHandler := modes.NewInputHandler(game)

	// The scheduler only runs while the game is playing
	clockScheduler, gameUpdateDone := engine.NewClockScheduler(game.Tick, cfg.TickInterval(), nil)
	game.SetClockHook(clockScheduler.SetRunning)
	clockScheduler.Start()
	defer clockScheduler.Stop()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	renderFrame := func() {
		snap := game.Snapshot()
		w, h := screen.Size()
		inputHandler.SetView(render.NewRenderContext(&snap, w, h))
		orchestrator.RenderFrame(&snap)
	}
	renderFrame()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				orchestrator.Resize(w, h)
				renderFrame()
				continue
			}
			if !inputHandler.HandleEvent(ev) {
				log.Printf("quit: state=%s ticks=%d", game.State(), clockScheduler.TickCount())
				return
			}

		case <-gameUpdateDone:
			// Frame ticker handles drawing; drain so the scheduler never blocks

		case <-frameTicker.C:
			renderFrame()
		}
	}
}
