package model

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	LastLogin    *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Admin) TableName() string {
	return "admins"
}
