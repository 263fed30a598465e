package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/bellapacxx/lottery-backend/engine"
)

// Hub fans engine events out to every connected websocket client. It is the
// event sink handed to the engine; Publish never blocks the caller, slow
// clients just miss messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	log.Printf("[Hub] client connected (total=%d)", total)
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.Close()
	}
	h.mu.Unlock()
}

// Publish implements engine.EventSink.
func (h *Hub) Publish(ev engine.Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Hub] failed to encode event %s: %v", ev.Type, err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		func(c *Client) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Hub] recovered broadcast: %v", r)
				}
			}()
			select {
			case c.send <- b:
			default:
				log.Printf("[Hub] dropping %s event to slow client", ev.Type)
			}
		}(c)
	}
}
