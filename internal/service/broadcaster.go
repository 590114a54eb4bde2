package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToClient(clientID string, msgType string, payload interface{})
	DisconnectClient(clientID string)
}
