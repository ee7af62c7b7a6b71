package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	LawyerId      uuid.UUID
	LastMessageAt time.Time
	CreatedAt     time.Time
}

type ConversationMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	SenderId       uuid.UUID
	SenderType     AccountType
	Content        string
	CreatedAt      time.Time
}
