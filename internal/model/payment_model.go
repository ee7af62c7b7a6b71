package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(3);not null;default:'INR'"`
	PaymentType   string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	TransactionId string    `gorm:"type:varchar(100);uniqueIndex"`
	RedirectURL   string    `gorm:"type:text"`
	PaidAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
