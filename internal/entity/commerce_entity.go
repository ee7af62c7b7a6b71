package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ad struct {
	Id          uuid.UUID
	Title       string
	Description string
	ImageURL    string
	Link        string
	Advertiser  string
	IsActive    bool
	Impressions int64
	Clicks      int64
	CreatedAt   time.Time
}

type PaymentType string

const (
	PaymentTypePremium   PaymentType = "premium"
	PaymentTypeRemoveAds PaymentType = "remove_ads"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Amount        int64
	Currency      string
	PaymentType   PaymentType
	Status        PaymentStatus
	TransactionId string
	RedirectURL   string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
