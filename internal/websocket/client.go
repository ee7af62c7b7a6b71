package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192

	FrameSendMessage = "sendMessage"
	FrameError       = "error"
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn

	AccountID uuid.UUID
	Role      string

	// Buffered channel of outbound messages. Closed only by the hub.
	Send chan []byte
}

func (c *Client) reply(frameType string, data interface{}) {
	payload, err := json.Marshal(Frame{Type: frameType, Data: data})
	if err != nil {
		return
	}
	select {
	case c.Send <- payload:
	default:
	}
}

// readPump pumps frames from the connection to the hub's message handler.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Hub", "Unexpected close", map[string]interface{}{"account_id": c.AccountID, "error": err.Error()})
			}
			return
		}

		var frame InboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.reply(FrameError, map[string]string{"message": "Malformed frame"})
			continue
		}
		if frame.Type != FrameSendMessage {
			c.reply(FrameError, map[string]string{"message": "Unsupported frame type"})
			continue
		}
		if c.Hub.onMessage == nil {
			continue
		}
		if err := c.Hub.onMessage(context.Background(), c, frame); err != nil {
			c.reply(FrameError, map[string]string{"message": err.Error()})
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// one frame per message; clients parse each as a JSON object
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
