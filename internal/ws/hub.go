package ws

import (
	"encoding/json"
	"sync"

	"github.com/89089599151/designer-clicker-bot/internal/domain"
	"github.com/89089599151/designer-clicker-bot/internal/logger"
)

// Event - сообщение для клиента.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	EventProgress = "order_progress"
	EventUnlock   = "achievement_unlock"
)

// Hub раздаёт события прогресса и ачивок по открытым соединениям игрока.
// Несколько вкладок = несколько клиентов на один tg_id.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]bool),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.TgID] == nil {
		h.clients[c.TgID] = make(map[*Client]bool)
	}
	h.clients[c.TgID][c] = true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.TgID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.clients, c.TgID)
		}
	}
}

// PublishProgress pushes an order progress event to the player's connections.
func (h *Hub) PublishProgress(tgID int64, payload interface{}) {
	h.publish(tgID, Event{Type: EventProgress, Payload: payload})
}

// PublishUnlock pushes an achievement unlock event.
func (h *Hub) PublishUnlock(tgID int64, def domain.AchievementDef) {
	h.publish(tgID, Event{Type: EventUnlock, Payload: def})
}

func (h *Hub) publish(tgID int64, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Error("ws: marshal event", "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[tgID] {
		select {
		case c.send <- data:
		default:
			// slow consumer, drop the event rather than block the caller
		}
	}
}
