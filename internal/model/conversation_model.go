package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair,priority:1"`
	LawyerId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair,priority:2;index"`
	LastMessageAt time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type ConversationMessage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index:idx_conversation_messages_created,priority:1"`
	SenderId       uuid.UUID `gorm:"type:uuid;not null"`
	SenderType     string    `gorm:"type:varchar(10);not null"`
	Content        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_conversation_messages_created,priority:2"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}
