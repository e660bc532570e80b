package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const messageUpdate = "update"

// updateMessage is sent to watching browsers over WebSocket.
type updateMessage struct {
	Type string `json:"type"`
	HTML string `json:"html,omitempty"`
}

// hub tracks WebSocket watchers and broadcasts updates to them.
type hub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// onWatchers reports the watcher count after every change.
	onWatchers func(float64)
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local preview tool
			},
		},
	}
}

// handleWebSocket upgrades the connection and holds it open until the
// watcher disconnects.
func (h *hub) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.add(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(conn)
	conn.Close()
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	h.reportWatchers(n)
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()
	h.reportWatchers(n)
}

func (h *hub) reportWatchers(n int) {
	if h.onWatchers != nil {
		h.onWatchers(float64(n))
	}
}

// broadcast sends a message to all watchers, dropping any whose
// connection has failed.
func (h *hub) broadcast(msg updateMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("dropping preview watcher", "error", err)
			h.remove(client)
			client.Close()
		}
	}
}
