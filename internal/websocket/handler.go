package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers the connection and blocks until it is closed.
func ServeWs(hub *Hub, c *websocket.Conn, accountID uuid.UUID, role string) {
	client := &Client{Hub: hub, Conn: c, AccountID: accountID, Role: role, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
