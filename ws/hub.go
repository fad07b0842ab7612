package ws

import (
	"sync/atomic"

	"github.com/javatech/cim-portal/metrics"
)

// Hub fans messages out to every connected chat client. The portal has a
// single public room, so one hub serves all connections.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	online     int32
}

// NewHub creates the chat hub. Run must be started on its own goroutine.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes register/unregister/broadcast events until the process exits
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			atomic.StoreInt32(&h.online, int32(len(h.clients)))
			metrics.WsConnections.Inc()
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				atomic.StoreInt32(&h.online, int32(len(h.clients)))
				metrics.WsConnections.Dec()
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(h.clients, c)
					metrics.WsConnections.Dec()
				}
			}
			atomic.StoreInt32(&h.online, int32(len(h.clients)))
		}
	}
}

// Broadcast queues a raw frame for delivery to every client
func (h *Hub) Broadcast(b []byte) {
	h.broadcast <- b
}

// Online returns the number of connected clients
func (h *Hub) Online() int { return int(atomic.LoadInt32(&h.online)) }
