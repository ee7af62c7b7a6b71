package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType maps an event code to who is notified and with what text.
type NotificationType struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string         `gorm:"type:varchar(50);unique;not null" json:"code"`
	DisplayName string         `gorm:"type:varchar(100);not null" json:"display_name"`
	Template    string         `gorm:"type:text;not null" json:"template"`
	TargetType  string         `gorm:"type:varchar(20);not null" json:"target_type"` // SELF, ADMIN or BROADCAST
	Priority    string         `gorm:"type:varchar(10);default:'MEDIUM'" json:"priority"`
	Channels    datatypes.JSON `gorm:"type:jsonb;default:'[\"web\"]'" json:"channels"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (NotificationType) TableName() string {
	return "notification_types"
}

type Notification struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_recipient_created,priority:1;index:idx_notifications_recipient_unread,priority:1" json:"recipient_id"`
	RecipientRole string           `gorm:"type:varchar(10);not null" json:"recipient_role"`
	ActorID       *uuid.UUID       `gorm:"type:uuid" json:"actor_id,omitempty"`
	TypeCode      string           `gorm:"type:varchar(50);not null;index" json:"type_code"`
	Type          NotificationType `gorm:"foreignKey:TypeCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title         string           `gorm:"type:varchar(200);not null" json:"title"`
	Message       string           `gorm:"type:text;not null" json:"message"`
	Metadata      datatypes.JSON   `gorm:"type:jsonb" json:"metadata,omitempty"`
	IsRead        bool             `gorm:"default:false;index:idx_notifications_recipient_unread,priority:2" json:"is_read"`
	ReadAt        *time.Time       `json:"read_at,omitempty"`
	CreatedAt     time.Time        `gorm:"default:CURRENT_TIMESTAMP;index:idx_notifications_recipient_created,priority:2" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
