package api

import (
	"sync"

	"github.com/gorilla/websocket"

	"fitapi/logger"
)

// Hub tracks websocket chat clients by user so coach replies only fan out to
// the connections that own them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]string // conn -> user id
}

func NewHub() *Hub { return &Hub{clients: make(map[*websocket.Conn]string)} }

func (h *Hub) Add(conn *websocket.Conn, user string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = user
	logger.Info("chat client connected", logger.FieldKV("remote_addr", conn.RemoteAddr().String()), logger.FieldKV("user", user))
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	_ = conn.Close()
	logger.Info("chat client disconnected", logger.FieldKV("remote_addr", conn.RemoteAddr().String()))
}

// BroadcastTo sends the message to every connection owned by the user.
func (h *Hub) BroadcastTo(user string, msg interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c, owner := range h.clients {
		if owner != user {
			continue
		}
		if err := c.WriteJSON(msg); err != nil {
			logger.Error("chat write error", err, logger.FieldKV("remote_addr", c.RemoteAddr().String()))
		}
	}
}
