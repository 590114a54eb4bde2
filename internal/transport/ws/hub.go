package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgRiskProfileReady     MessageType = "risk_profile_ready"
	MsgRecommendationsReady MessageType = "recommendations_ready"
	MsgError                MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections keyed by client id
type Hub struct {
	clientConns map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	ClientID string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ClientID string
	Message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		clientConns: make(map[string]*Connection),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			// One live connection per client; replace any stale one
			if existing, ok := h.clientConns[conn.ClientID]; ok {
				close(existing.Send)
			}
			h.clientConns[conn.ClientID] = conn
			log.Printf("Client %s connected", conn.ClientID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.clientConns[conn.ClientID]; ok && existing == conn {
				delete(h.clientConns, conn.ClientID)
				close(conn.Send)
				log.Printf("Client %s disconnected", conn.ClientID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			if conn, ok := h.clientConns[msg.ClientID]; ok {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToClient sends a message to one client (implements service.Broadcaster)
func (h *Hub) BroadcastToClient(clientID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ClientID: clientID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectClient drops a client's connection (implements service.Broadcaster)
func (h *Hub) DisconnectClient(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.clientConns[clientID]; ok {
		delete(h.clientConns, clientID)
		close(conn.Send)
	}
}
