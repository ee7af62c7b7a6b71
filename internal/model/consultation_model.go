package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Consultation struct {
	Id         uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Query      string                      `gorm:"type:text;not null"`
	Mode       string                      `gorm:"type:varchar(10);not null;default:'text'"`
	Response   string                      `gorm:"type:text;not null"`
	Citations  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Disclaimer string                      `gorm:"type:text"`
	IsPremium  bool                        `gorm:"default:false"`
	VisualData *string                     `gorm:"type:text"`
	TopicId    string                      `gorm:"type:varchar(50)"`
	Outcome    string                      `gorm:"type:varchar(20)"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime;index"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// ChatHistoryEntry is the per-user transcript. Rows are only ever inserted.
type ChatHistoryEntry struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID                   `gorm:"type:uuid;not null;index:idx_chat_history_user_created,priority:1"`
	ConsultationId uuid.UUID                   `gorm:"type:uuid;not null"`
	Query          string                      `gorm:"type:text;not null"`
	Response       string                      `gorm:"type:text;not null"`
	Mode           string                      `gorm:"type:varchar(10);not null"`
	IsPremium      bool                        `gorm:"default:false"`
	Citations      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime;index:idx_chat_history_user_created,priority:2"`
}

func (ChatHistoryEntry) TableName() string {
	return "chat_history"
}
