package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode is a pending OTP. One row per account, purpose and channel.
type VerificationCode struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountId   uuid.UUID `gorm:"type:uuid;not null;index:idx_verification_lookup,priority:1"`
	AccountType string    `gorm:"type:varchar(20);not null"`
	Purpose     string    `gorm:"type:varchar(30);not null;index:idx_verification_lookup,priority:2"`
	Channel     string    `gorm:"type:varchar(10);not null;index:idx_verification_lookup,priority:3"`
	Code        string    `gorm:"type:varchar(10);not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (VerificationCode) TableName() string {
	return "verification_codes"
}
