// Package spectate streams encoded game snapshots to read-only WebSocket viewers.
package spectate

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

const (
	broadcastBuf = 16
	registerBuf  = 64
)

// Hub fans out snapshot frames to every connected spectator.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	latest  []byte

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	log *log.Logger
}

// NewHub creates a hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, registerBuf),
		unregister: make(chan *Client, registerBuf),
		broadcast:  make(chan []byte, broadcastBuf),
		done:       make(chan struct{}),
		log:        logger.WithPrefix("spectate"),
	}
}

// Run processes register, unregister and broadcast events until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			latest := h.latest
			h.mu.Unlock()
			// Late joiners see the current frame right away.
			if latest != nil {
				c.enqueue(latest)
			}
			h.log.Debug("spectator joined", "remote", c.remote, "clients", h.ClientCount())

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.log.Debug("spectator left", "remote", c.remote)

		case frame := <-h.broadcast:
			h.mu.Lock()
			h.latest = frame
			for c := range h.clients {
				c.enqueue(frame)
			}
			h.mu.Unlock()
		}
	}
}

// join hands c to the Run loop. It reports false once the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave hands c back to the Run loop, or gives up if the hub has stopped.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues a frame for every spectator. It never blocks the caller;
// when the queue is full the frame is dropped.
func (h *Hub) Publish(frame []byte) {
	select {
	case h.broadcast <- frame:
	default:
		h.log.Debug("frame dropped", "bytes", len(frame))
	}
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
