package devmode

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Well-known paths for the dev-mode endpoints.
const (
	TriggerPath   = "/_overridable/devmode"
	WebSocketPath = "/_overridable/ws"
)

// MessageType is the type of a message pushed to browsers.
type MessageType string

const (
	MessageActivated MessageType = "devmode"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type   MessageType `json:"type"`
	Active bool        `json:"active"`
}

// Hub manages WebSocket connections of pages that render overridable
// regions, and tells them to re-render when dev mode is activated.
type Hub struct {
	mode     *Mode
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex // gorilla connections allow one concurrent writer
	upgrader websocket.Upgrader
	logger   *slog.Logger
	stop     func()
}

// NewHub creates a hub that broadcasts activation of mode.
func NewHub(mode *Mode, logger *slog.Logger) *Hub {
	if mode == nil {
		mode = std
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		mode:    mode,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev tooling only
			},
		},
		logger: logger.With("component", "devmode_hub"),
	}
	h.stop = mode.Subscribe(func() {
		h.Broadcast(Message{Type: MessageActivated, Active: true})
	})
	return h
}

// HandleWebSocket handles WebSocket upgrade and connection.
// A client connecting after activation immediately receives the current state.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	if h.mode.Active() {
		h.send(conn, Message{Type: MessageActivated, Active: true})
	}

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

// HandleTrigger activates dev mode on POST and reports the state on GET.
func (h *Hub) HandleTrigger(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		h.mode.Activate()
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Message{Type: MessageActivated, Active: h.mode.Active()})
}

// Broadcast sends a message to all connected clients.
// Clients that fail to receive it are dropped.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.send(client, msg)
	}
}

func (h *Hub) send(conn *websocket.Conn, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	h.writeMu.Unlock()
	if err != nil {
		h.logger.Debug("dropping websocket client", "error", err)
		h.remove(conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close unsubscribes from the mode and closes all client connections.
func (h *Hub) Close() {
	h.stop()

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

// ClientScript returns the script injected into preview pages. It exposes
// the activation trigger as window.__overridableDevMode() and reloads the
// page when the server reports activation. rendered tells the script whether
// the page was already rendered in dev mode.
func ClientScript(rendered bool) string {
	flag := "false"
	if rendered {
		flag = "true"
	}
	return "\nvar __overridableRendered = " + flag + ";" + clientScript
}

const clientScript = `
(function() {
    'use strict';

    window.__overridableDevMode = function() {
        return fetch('` + TriggerPath + `', {method: 'POST'});
    };

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var tagged = window.__overridableRendered;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '` + WebSocketPath + `');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            if (msg.type === 'devmode' && msg.active && !tagged) {
                location.reload();
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
`
