// Package spectate streams engine snapshots to read-only websocket
// viewers. Frames are msgpack-encoded rush.Snapshot values.
package spectate

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/neon-rush/internal/games/rush"
)

// sendBuffer is the per-viewer frame queue. A viewer that falls this far
// behind is dropped.
const sendBuffer = 64

// Hub maintains the set of connected viewers and fans frames out to them.
type Hub struct {
	clients    map[*client]struct{}
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}
	upgrader   websocket.Upgrader
	logger     *log.Logger

	mu     sync.Mutex
	latest []byte // Last frame, sent to viewers as they join
}

// NewHub creates a hub. Call Run before serving viewers.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan []byte, sendBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing
// every viewer.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				h.drop(c)
			}
			h.logger.Debug("spectator hub stopped")
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			if frame := h.Latest(); frame != nil {
				c.send <- frame
			}
			h.logger.Info("spectator connected", "remote", c.conn.RemoteAddr().String(), "viewers", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Info("spectator disconnected", "remote", c.conn.RemoteAddr().String(), "viewers", len(h.clients))
			}

		case frame := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- frame:
				default:
					h.drop(c)
					h.logger.Warn("dropping slow spectator", "remote", c.conn.RemoteAddr().String())
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}

// Publish encodes snap and queues it for every viewer. It never blocks
// the caller: when the hub is saturated the frame is skipped, and the
// next one supersedes it.
func (h *Hub) Publish(snap rush.Snapshot) {
	frame, err := msgpack.Marshal(&snap)
	if err != nil {
		h.logger.Error("failed to encode snapshot", "tick", snap.Tick, "err", err)
		return
	}

	h.mu.Lock()
	h.latest = frame
	h.mu.Unlock()

	select {
	case h.broadcast <- frame:
	default:
	}
}

// Latest returns the most recently published frame, or nil.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// ServeHTTP upgrades the request to a websocket and streams frames until
// the viewer disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	c.readPump()
}

// Decode parses a frame produced by Publish and rejects frames that
// place the player or an entity outside the three lanes.
func Decode(frame []byte) (rush.Snapshot, error) {
	var snap rush.Snapshot
	if err := msgpack.Unmarshal(frame, &snap); err != nil {
		return rush.Snapshot{}, fmt.Errorf("decode frame: %w", err)
	}

	if !snap.Lane.Valid() {
		return rush.Snapshot{}, fmt.Errorf("decode frame: player lane %d out of range", snap.Lane)
	}
	for _, o := range snap.Obstacles {
		if !o.Lane.Valid() {
			return rush.Snapshot{}, fmt.Errorf("decode frame: obstacle %d lane %d out of range", o.ID, o.Lane)
		}
	}
	for _, p := range snap.PowerUps {
		if !p.Lane.Valid() {
			return rush.Snapshot{}, fmt.Errorf("decode frame: power-up %d lane %d out of range", p.ID, p.Lane)
		}
	}
	return snap, nil
}
