package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/engine"
	"github.com/Caizj-lg/block-breaker-game/systems"
	"github.com/Caizj-lg/block-breaker-game/vmath"
	"github.com/Caizj-lg/block-breaker-game/web"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	addrFlag   = flag.String("addr", "", "Listen address, overrides web.addr")
	seedFlag   = flag.Uint64("seed", 0, "Base RNG seed for sessions, 0 seeds each session from the clock")
)

func newSimulation(cfg config.Config, seed uint64) engine.Simulation {
	return systems.NewPhysicsSystem(cfg, vmath.NewFastRand(seed))
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
		log.Printf("config loaded from %s", *configFlag)
	}
	if *addrFlag != "" {
		cfg.Web.Addr = *addrFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}

	gameServer := web.NewServer(cfg, newSimulation)
	httpServer := &http.Server{
		Addr:              cfg.Web.Addr,
		Handler:           gameServer.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Printf("shutting down, %d sessions open", gameServer.ClientCount())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Hijacked websocket connections are not tracked by Shutdown
		gameServer.Close()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.Web.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}
