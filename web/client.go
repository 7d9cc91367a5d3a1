package web

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Caizj-lg/block-breaker-game/core"
	"github.com/Caizj-lg/block-breaker-game/engine"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 1024
	maxMessagesPerSec = 240
)

type outbound struct {
	binary bool
	data   []byte
}

// Client is one websocket connection and the game session it owns
type Client struct {
	server     *Server
	conn       *websocket.Conn
	send       chan outbound
	done       chan struct{}
	closeOnce  sync.Once
	sessionID  string
	encoding   string
	remoteAddr string

	game   *engine.Game
	sched  *engine.ClockScheduler
	frames <-chan struct{}

	msgCount   int
	msgResetAt time.Time
}

// run starts the session clock and the connection pumps
func (c *Client) run() {
	c.sched.Start()

	core.Go(c.writePump)
	core.Go(c.framePump)

	snap := c.game.Snapshot()
	c.SendJSON(Envelope{T: MsgWelcome, Data: WelcomeMsg{
		SessionID: c.sessionID,
		Encoding:  c.encoding,
		Width:     snap.Width,
		Height:    snap.Height,
	}})
	c.sendSnapshot(&snap)

	core.Go(c.readPump)
}

// close tears the session down once, from whichever pump fails first
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.sched.Stop()
		c.conn.Close()
		c.server.unregister(c)
		log.Printf("session %s closed (%s)", c.sessionID, c.remoteAddr)
	})
}

// readPump reads messages from the WebSocket connection
func (c *Client) readPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			return
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			return
		}

		c.handleMessage(message)
	}
}

// writePump is the only writer on the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			kind := websocket.TextMessage
			if msg.binary {
				kind = websocket.BinaryMessage
			}
			if err := c.conn.WriteMessage(kind, msg.data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// framePump sends a state frame after every scheduler tick
func (c *Client) framePump() {
	for {
		select {
		case <-c.frames:
			snap := c.game.Snapshot()
			c.sendSnapshot(&snap)
		case <-c.done:
			return
		}
	}
}

func (c *Client) sendSnapshot(snap *engine.Snapshot) {
	gs := NewGameState(snap)
	if c.encoding == EncodingJSON {
		c.SendJSON(Envelope{T: MsgState, Data: gs})
		return
	}
	data, err := msgpack.Marshal(&gs)
	if err != nil {
		log.Printf("msgpack marshal error: %v", err)
		return
	}
	c.enqueue(outbound{binary: true, data: data})
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.enqueue(outbound{data: data})
}

func (c *Client) enqueue(msg outbound) {
	select {
	case c.send <- msg:
	case <-c.done:
	default:
		// Client too slow, drop frame
	}
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "malformed message"}})
		return
	}

	switch env.T {
	case MsgInput:
		var msg InputMsg
		if err := json.Unmarshal(env.D, &msg); err != nil {
			return
		}
		c.game.SetPaddleCenter(msg.X)
		// Paddle input is applied on the next tick frame
		return
	case MsgResize:
		var msg ResizeMsg
		if err := json.Unmarshal(env.D, &msg); err != nil {
			return
		}
		c.game.Resize(msg.W)
	case MsgLaunch:
		c.game.Launch()
	case MsgStart:
		c.game.Start()
	case MsgRestart:
		c.game.Restart()
	case MsgContinue:
		c.game.Continue()
	case MsgPause:
		c.game.Pause()
	case MsgResume:
		c.game.Resume()
	default:
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "unknown message type: " + env.T}})
		return
	}

	// Commands may change state while the clock is stopped
	snap := c.game.Snapshot()
	c.sendSnapshot(&snap)
}
