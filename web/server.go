package web

import (
	_ "embed"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/engine"
)

//go:embed static/index.html
var indexHTML []byte

// SimulationFactory builds the rule set for one session
type SimulationFactory func(cfg config.Config, seed uint64) engine.Simulation

// Server hosts one independent game per websocket connection
type Server struct {
	cfg    config.Config
	newSim SimulationFactory

	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[string]*Client
	sessions atomic.Uint64
}

// NewServer creates a server; every connection gets its own game built from cfg
func NewServer(cfg config.Config, newSim SimulationFactory) *Server {
	s := &Server{
		cfg:     cfg,
		newSim:  newSim,
		clients: make(map[string]*Client),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true // Non-browser clients don't send Origin
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false
			}
			return u.Host == r.Host
		},
	}
	return s
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Routes configures HTTP routes
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	encoding := EncodingMsgpack
	if r.URL.Query().Get("enc") == EncodingJSON {
		encoding = EncodingJSON
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade error: %v", err)
		return
	}

	c, err := s.newClient(conn, extractIP(r), encoding)
	if err != nil {
		log.Printf("session setup failed: %v", err)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session setup failed"))
		conn.Close()
		return
	}

	s.mu.Lock()
	s.clients[c.sessionID] = c
	s.mu.Unlock()

	log.Printf("session %s opened (%s, %s)", c.sessionID, c.remoteAddr, encoding)
	c.run()
}

func (s *Server) newClient(conn *websocket.Conn, remoteAddr, encoding string) (*Client, error) {
	seed := s.nextSeed()
	game, err := engine.NewGame(s.cfg, s.newSim(s.cfg, seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	sched, frames := engine.NewClockScheduler(game.Tick, s.cfg.TickInterval(), nil)
	game.SetClockHook(sched.SetRunning)

	return &Client{
		server:     s,
		conn:       conn,
		send:       make(chan outbound, constants.SendBufferSize),
		done:       make(chan struct{}),
		sessionID:  uuid.NewString(),
		encoding:   encoding,
		remoteAddr: remoteAddr,
		game:       game,
		sched:      sched,
		frames:     frames,
	}, nil
}

// nextSeed derives a per-session seed; a configured seed makes sessions reproducible in order
func (s *Server) nextSeed() uint64 {
	n := s.sessions.Add(1)
	if s.cfg.Game.Seed != 0 {
		return s.cfg.Game.Seed + n - 1
	}
	return uint64(time.Now().UnixNano()) + n
}

func (s *Server) unregister(c *Client) {
	s.mu.Lock()
	delete(s.clients, c.sessionID)
	s.mu.Unlock()
}

// ClientCount returns the number of open sessions
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close ends every open session
func (s *Server) Close() {
	s.mu.Lock()
	clients := make([]*Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}
