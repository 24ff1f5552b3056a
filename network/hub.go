package network

import (
	"context"
	"sync/atomic"
)

// Hub maintains the set of spectators and fans frames out to them
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client

	count  atomic.Int32
	onDrop func()
}

// NewHub creates a hub; onDrop, if set, runs for every frame a slow client misses
func NewHub(onDrop func()) *Hub {
	if onDrop == nil {
		onDrop = func() {}
	}
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 1),
		register:   make(chan *client),
		unregister: make(chan *client),
		onDrop:     onDrop,
	}
}

// Clients returns the number of connected spectators
func (h *Hub) Clients() int { return int(h.count.Load()) }

// Broadcast queues msg without blocking; msg must not be modified afterwards.
// Returns false when the previous frame is still being fanned out.
func (h *Hub) Broadcast(msg []byte) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		h.onDrop()
		return false
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes every client queue
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			delete(h.clients, c)
			close(c.send)
		}
		h.count.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = true
			h.count.Store(int32(len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.count.Store(int32(len(h.clients)))
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// spectator is behind, it skips this frame
					h.onDrop()
				}
			}
		}
	}
}
