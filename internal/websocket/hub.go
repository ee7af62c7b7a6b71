package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"samvidhan-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "cluster_events"

// Frame is the envelope of every server-to-client message.
type Frame struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// InboundFrame is what clients send: {"type":"sendMessage","to":"<uuid>","message":"..."}.
type InboundFrame struct {
	Type    string `json:"type"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// MessageHandler processes a frame received from a client. A returned error is
// reported back to that client only.
type MessageHandler func(ctx context.Context, client *Client, frame InboundFrame) error

type clusterMessage struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

type Hub struct {
	// account id -> connections (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// optional; fans frames out to other instances
	rdb        *redis.Client
	instanceID string

	onMessage MessageHandler
	logger    logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// SetMessageHandler must be called before Run.
func (h *Hub) SetMessageHandler(fn MessageHandler) {
	h.onMessage = fn
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.AccountID] = append(h.clients[client.AccountID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"account_id": client.AccountID, "role": client.Role})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// remove is the only place a client's Send channel is closed.
func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.AccountID]
	for i, c := range clients {
		if c == client {
			h.clients[client.AccountID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.AccountID]) == 0 {
		delete(h.clients, client.AccountID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"account_id": client.AccountID})
	}
}

// Push delivers a typed frame to every connection of recipientID, locally and
// on the other instances.
func (h *Hub) Push(recipientID uuid.UUID, frameType string, data interface{}) {
	payload, err := json.Marshal(Frame{Type: frameType, Data: data})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode frame", map[string]interface{}{"type": frameType, "error": err.Error()})
		return
	}

	h.deliverLocal(recipientID, payload)

	if h.rdb != nil {
		msg, _ := json.Marshal(clusterMessage{
			Origin:       h.instanceID,
			TargetUserID: recipientID.String(),
			Message:      payload,
		})
		if err := h.rdb.Publish(context.Background(), clusterChannel, msg).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// Connected reports whether the account has a live connection on this instance.
func (h *Hub) Connected(accountID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[accountID]) > 0
}

func (h *Hub) deliverLocal(accountID uuid.UUID, payload []byte) {
	// sends happen under the read lock so remove cannot close Send mid-send
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[accountID] {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"account_id": accountID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.instanceID {
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}
		h.deliverLocal(uid, payload.Message)
	}
}
