// Package ws streams engine events to connected clients: navigation
// performed by the action executor and the deferred view signals it raises.
// The client view layer observes the stream and reacts; the server never
// learns whether it did.
package ws

import (
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/careshift/servicetree/internal/executor"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans engine events out to all connected clients. It implements both
// executor.Navigator and executor.Sink.
type Hub struct {
	log *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHub creates an empty hub.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{log: log, conns: make(map[*websocket.Conn]bool)}
}

// HandleConnection upgrades the request and keeps the connection registered
// until the client goes away. Clients only listen; inbound messages other
// than pings are ignored.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	h.send(conn, map[string]interface{}{"type": "connected"})

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg["type"] == "ping" {
			h.send(conn, map[string]interface{}{"type": "pong"})
		}
	}
}

// send writes a payload to a single connection. Writes hold the hub lock so
// they never interleave with a broadcast on the same connection.
func (h *Hub) send(conn *websocket.Conn, payload interface{}) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		h.log.Warn("failed to encode message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		delete(h.conns, conn)
		conn.Close()
	}
}

// Navigate broadcasts a navigation event. Part of the executor.Navigator
// contract.
func (h *Hub) Navigate(route string) {
	h.Broadcast(map[string]interface{}{"type": "navigate", "route": route})
}

// Emit broadcasts a deferred view signal. Part of the executor.Sink
// contract.
func (h *Hub) Emit(sig executor.Signal) {
	h.Broadcast(sig)
}

// Broadcast sends a payload to every connected client. Send failures drop
// the connection; delivery is fire-and-forget.
func (h *Hub) Broadcast(payload interface{}) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		h.log.Warn("failed to encode broadcast", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
